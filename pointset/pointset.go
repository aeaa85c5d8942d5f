package pointset

// PointSet is a finite point set in the unit hypercube [0, 1)^s.
//
// Implementations generate coordinates deterministically. Coordinate
// must be safe for concurrent readers.
type PointSet interface {
	// NumPoints returns the number of points n.
	NumPoints() int

	// Dim returns the dimension s of the points.
	Dim() int

	// Coordinate returns the j-th coordinate of point i.
	// Arguments are not validated: i must be in [0, n) and j in [0, s).
	Coordinate(i, j int) float64
}

// Matrix materializes ps into an n-by-s matrix of coordinates.
// Row i is point i.
func Matrix(ps PointSet) [][]float64 {
	n, s := ps.NumPoints(), ps.Dim()
	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, s)
		for j := 0; j < s; j++ {
			row[j] = ps.Coordinate(i, j)
		}
		points[i] = row
	}
	return points
}

// Column materializes coordinate j of every point of ps.
// Used for the one-dimensional discrepancy forms.
func Column(ps PointSet, j int) []float64 {
	n := ps.NumPoints()
	t := make([]float64, n)
	for i := 0; i < n; i++ {
		t[i] = ps.Coordinate(i, j)
	}
	return t
}
