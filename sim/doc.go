// Package sim advances cars and pedestrians over a roadnet.Graph toward its
// evacuation sink, one discrete tick at a time.
//
// A Simulator is built once per run from a graph with a computed sink tree
// and an immutable Config. The host then alternates Spawn (as evacuees
// appear) and AdvanceTick (once per simulated time unit) until Drained.
//
// Per tick, every active unit is processed in ascending id order:
//
//  1. Cars update speed from the congestion cap of their arc, with a random
//     over-braking event of probability OverBrakeProbability.
//  2. The unit moves by its speed.
//  3. A unit within TerminateTolerance of the sink terminates.
//  4. Surplus distance carries onto following arcs, prorated by the speed on
//     each new arc, possibly crossing several arcs in one tick.
//  5. Terminated units leave the active set.
//
// Cars hold occupancy on exactly one arc at a time; pedestrians never do.
// Journey metrics are recorded for cars only.
//
// Randomness comes from an injected RandSource. With the same Config, graph
// and seed, runs reproduce tick for tick.
//
// A Simulator is not safe for concurrent use. Distinct Simulators share no
// state as long as each owns its graph (see roadnet.Graph.Clone).
package sim
