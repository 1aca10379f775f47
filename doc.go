// Package evacsim is a discrete-time evacuation traffic microsimulation:
// cars and pedestrians leave their homes, follow shortest paths over a road
// network and slow each other down on the way to one evacuation point.
//
// 🚀 What is inside?
//
//	dijkstra/     single-source shortest-path tree over an integer arc arena
//	roadnet/      road network graph: arcs, free-flow speeds, sink tree, occupancy
//	sim/          the vehicle simulator: spawn, tick kinematics, arrivals, metrics
//	cmd/evacsim/  demo driver: env config, toy town, parallel replicates
//	examples/     runnable scenario programs
//
// ✨ Model in one paragraph
//
// Every road record becomes a pair of arcs. All routes lead to the sink, so
// one shortest-path tree rooted there serves every start node. Evacuees
// close to the sink walk; the rest share cars. Each tick a car accelerates
// toward the lesser of its road's free-flow speed and the spacing left by
// the other cars on that arc, sometimes braking too hard. Surplus distance
// carries onto the next arc. Arrivals leave the network and record how long
// the trip took against the free-flow ideal.
//
// Quick ASCII example:
//
//	home ──2km── junction ──1km── school (sink)
//	  \                          /
//	   ─────────── 5km ──────────
//
// A car from home takes the 3 km route; with one car on each arc it drives
// at free-flow the whole way.
//
//	go get github.com/katalvlaran/evacsim
package evacsim
