package structwalk

type (
	//Visitor handles waypoints by the kind of the visited value
	Visitor interface {
		VisitRecord(waypoint *Waypoint) error
		VisitScalar(waypoint *Waypoint) error
	}

	//CollectionVisitor optionally handles collection waypoints, collections are otherwise skipped by Accept
	CollectionVisitor interface {
		VisitCollection(waypoint *Waypoint) error
	}

	//VisitorFuncs adapts handler functions to Visitor, nil handler is a no-op
	VisitorFuncs struct {
		Record     func(waypoint *Waypoint) error
		Scalar     func(waypoint *Waypoint) error
		Collection func(waypoint *Waypoint) error
	}
)

// VisitRecord calls Record handler
func (f VisitorFuncs) VisitRecord(waypoint *Waypoint) error {
	if f.Record == nil {
		return nil
	}
	return f.Record(waypoint)
}

// VisitScalar calls Scalar handler
func (f VisitorFuncs) VisitScalar(waypoint *Waypoint) error {
	if f.Scalar == nil {
		return nil
	}
	return f.Scalar(waypoint)
}

// VisitCollection calls Collection handler
func (f VisitorFuncs) VisitCollection(waypoint *Waypoint) error {
	if f.Collection == nil {
		return nil
	}
	return f.Collection(waypoint)
}
