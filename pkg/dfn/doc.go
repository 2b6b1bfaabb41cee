// Package dfn implements the discrete fracture network domain model:
// fractures (disks or polygons), wells, the bounding system, and the
// network that computes pairwise intersections and derived statistics.
//
// # Model
//
// A [System] is a bounding polyhedron, built parametrically (for example
// [System.BuildParallelepiped]) and optionally holding registered well
// tunnels. A [Network] aggregates one system with a fracture population.
// Intersections are computed explicitly with
// [Network.ComputeIntersections] and partitioned by
// [IntersectionKind]; statistics such as [Network.Density] (P32 intensity)
// derive from the clipped fracture geometry.
//
// # Typical usage
//
//	sys := dfn.NewSystem()
//	_ = sys.BuildParallelepiped(geom.V(2.5, 2.5, 2.5), 5, 5, 5)
//
//	net, _ := dfn.NewNetwork(sys)
//	f, _ := dfn.NewDiskFracture(geom.V(2.5, 2.5, 2.5), 2, 45, 90)
//	_ = net.AddFracture(f)
//
//	net.ComputeIntersections()
//	fmt.Println(net.NbIntersections(dfn.KindFractureFracture), net.Density())
package dfn
