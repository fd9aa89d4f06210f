// Package structwalk walks trees of structured records and exposes the visited positions as a lazy
// sequence of waypoints, each able to accept a visitor.
//
// Traversal order is chosen independently of the processing logic:
//
//	it := structwalk.PreOrder(root)
//	for it.Next() {
//		waypoint := it.Waypoint()
//		fmt.Println(waypoint.Sequence(), waypoint.Path())
//	}
//	if err := it.Err(); err != nil {
//		return err
//	}
//
// Supported strategies are breadth-first and the depth-first pre-order, in-order, post-order,
// reverse pre-order and reverse post-order. Records are discovered through a schema.Accessor,
// by default the reflection based record.Accessor.
package structwalk
