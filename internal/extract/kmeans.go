// Package extract finds the dominant colours of an image so that a picture
// can stand in for a source colour.
package extract

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"slices"

	"github.com/jmylchreest/palettegen/pkg/colour"
)

// minAlpha is the alpha below which a pixel is ignored.
const minAlpha = 0.5

// Cluster is one extracted colour with the share of sampled pixels it
// represents.
type Cluster struct {
	Colour colour.RGB
	Weight float64
}

// KMeans extracts colours with k-means++ clustering in RGB space.
type KMeans struct {
	maxIterations int
	convergence   float64
	maxSamples    int
	rng           *rand.Rand
}

// NewKMeans returns an extractor whose initial centroids are drawn from seed.
func NewKMeans(seed int64) *KMeans {
	return &KMeans{
		maxIterations: 20,
		convergence:   2.0,
		maxSamples:    2000,
		rng:           rand.New(rand.NewSource(seed)), // #nosec G404 -- clustering does not need a secure source
	}
}

// Extract returns up to count clusters ordered by descending weight.
func (e *KMeans) Extract(img image.Image, count int) ([]Cluster, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("color count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("color count too large: %d (maximum: 256)", count)
	}

	points := e.samplePoints(img)
	if len(points) == 0 {
		return nil, fmt.Errorf("no opaque pixels found in image")
	}

	// Fewer distinct colours than requested: every colour is its own cluster.
	counts := make(map[point3D]int)
	var unique []point3D
	for _, p := range points {
		if counts[p] == 0 {
			unique = append(unique, p)
		}
		counts[p]++
	}
	if count >= len(unique) {
		clusters := make([]Cluster, len(unique))
		for i, p := range unique {
			clusters[i] = Cluster{Colour: p.rgb(), Weight: float64(counts[p]) / float64(len(points))}
		}
		sortClusters(clusters)
		return clusters, nil
	}

	centroids, weights := e.kmeans(points, count)
	clusters := make([]Cluster, 0, len(centroids))
	for i, c := range centroids {
		if weights[i] == 0 {
			continue
		}
		clusters = append(clusters, Cluster{Colour: c.rgb(), Weight: weights[i]})
	}
	sortClusters(clusters)
	return clusters, nil
}

// Dominant returns the heaviest cluster colour of img. Clustering is seeded
// from the image content so the same picture always yields the same colour.
func Dominant(img image.Image, count int) (colour.RGB, error) {
	seed, err := ContentSeed(img)
	if err != nil {
		return colour.RGB{}, err
	}
	clusters, err := NewKMeans(seed).Extract(img, count)
	if err != nil {
		return colour.RGB{}, err
	}
	return clusters[0].Colour, nil
}

func sortClusters(clusters []Cluster) {
	slices.SortStableFunc(clusters, func(a, b Cluster) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return 0
		}
	})
}

// point3D represents a point in 3D RGB color space with 8-bit channels.
type point3D struct {
	R, G, B float64
}

func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func (p point3D) rgb() colour.RGB {
	c, _ := colour.NewRGB(
		math.Min(math.Max(math.Round(p.R), 0), 255)/255,
		math.Min(math.Max(math.Round(p.G), 0), 255)/255,
		math.Min(math.Max(math.Round(p.B), 0), 255)/255,
		colour.Opaque,
	)
	return c
}

// samplePoints samples the opaque pixels of the image.
// For large images, we sample a grid to improve performance.
func (e *KMeans) samplePoints(img image.Image) []point3D {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()
	step := 1
	if totalPixels > e.maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(e.maxSamples))), 1)
	}

	points := make([]point3D, 0, min(totalPixels, e.maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c := colour.FromColor(img.At(x, y))
			if c.Alpha() < minAlpha {
				continue
			}
			r, g, b, _ := c.Bytes()
			points = append(points, point3D{R: float64(r), G: float64(g), B: float64(b)})
			if len(points) >= e.maxSamples {
				return points
			}
		}
	}
	return points
}

// kmeans performs k-means clustering on the sampled points.
// Returns centroids and their weights (relative cluster sizes).
func (e *KMeans) kmeans(points []point3D, k int) ([]point3D, []float64) {
	centroids := e.initializeCentroids(points, k)
	assignments := make([]int, len(points))

	for range e.maxIterations {
		changed := 0
		for i, point := range points {
			nearest := findNearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// fewer than 1% of points moved
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := e.recalculateCentroids(points, assignments, k)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids

		if totalMovement/float64(k) < e.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, assignment := range assignments {
		weights[assignment]++
	}
	for i := range weights {
		weights[i] /= float64(len(assignments))
	}
	return centroids, weights
}

// initializeCentroids picks k starting centroids with k-means++.
func (e *KMeans) initializeCentroids(points []point3D, k int) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[e.rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		totalDistance := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				minDist = math.Min(minDist, point.distance(centroid))
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := e.rng.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}
	return centroids
}

func findNearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, centroid := range centroids {
		if dist := point.distance(centroid); dist < minDist {
			minDist = dist
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids moves each centroid to the mean of its points. An
// empty cluster is restarted on a random point.
func (e *KMeans) recalculateCentroids(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)
	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := range k {
		if counts[i] > 0 {
			n := float64(counts[i])
			centroids[i] = point3D{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
		} else {
			centroids[i] = points[e.rng.Intn(len(points))]
		}
	}
	return centroids
}
