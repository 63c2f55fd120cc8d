// Package gridpath is a small toolkit for shortest paths on 2-D grids and
// dense weighted graphs.
//
// What is inside:
//
//	grid/      immutable cell grids, 4-neighbourhood, pixel mapping, regions
//	frontier/  indexed min-priority queue with decrease-key
//	route/     predecessor-chain walking and path measurements
//	astar/     A* search on grids (Manhattan, scaled or zero heuristic)
//	dijkstra/  single-source shortest distances on adjacency matrices
//	mapfile/   text and YAML map documents, ASCII rendering
//	scenario/  HCL scenario files that batch searches and graph queries
//
// Two commands sit on top:
//
//	cmd/gridpath   runs scenario files and prints reports
//	cmd/gridpathd  serves /v1/paths and /v1/distances over HTTP
//
// Quick ASCII example:
//
//	S . #
//	. . G
//
// astar.FindPath from S to G returns S (0,1) (1,1) G with cost 3.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
