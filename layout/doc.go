// Package layout loads a store floor plan from YAML and turns it into the
// inputs the routing engine needs: a gridgraph.Grid, the entry cell and the
// cells shoppers walk to for each aisle.
//
// A layout file looks like this:
//
//	version: store-7
//	size: 13
//	entry: {x: 6, z: 13}
//	walls:
//	  - {from: {x: 0, z: 7}, to: {x: 12, z: 7}}
//	aisles:
//	  - {name: produce, cell: {x: 2, z: 4}}
//	  - {name: dairy, cell: {x: 11, z: 5}}
//
// Walkability can also be drawn with an optional map: one string per row
// from z=0 down to z=size, one character per column, '#' for a shelf and
// '.' for floor. Walls are applied on top of the map.
//
// Resolve maps shopping items to route.Destination values by aisle name.
// Diagnose reports aisles a shopper cannot reach from the entry, so a broken
// floor plan is caught before any route is requested.
package layout
