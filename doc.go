// Package lvlinalg is a small numeric toolkit for agglomerative clustering:
// vectors, rectangular matrices, reductions, Euclidean distances, the
// all-pairs distance matrix and Ward's error sum of squares.
//
// Under the hood, everything lives in one subpackage:
//
//	linalg/   — Vector, Matrix, IndexSet, DistanceMatrix and the operations over them
//	examples/ — a runnable naive Ward agglomeration
//
// Quick example:
//
//	m, _ := linalg.NewMatrix([][]float64{{0, 0}, {3, 4}, {0, 4}})
//	dm := m.DistMatrix()
//	d, _ := dm.At(0, 1) // 5
//
//	go get github.com/katalvlaran/lvlinalg/linalg
package lvlinalg
