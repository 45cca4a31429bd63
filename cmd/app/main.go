package main

import (
	"fmt"
	"html"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"github.com/0x0FACED/go-delaunay/static"
	"go.uber.org/zap"
)

const maxPoints = 2000

// Генерируем случайные точки. seed == 0 - текущее время
func generateRandPoints(n int, width, height int, seed int64) []geom.Point {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	points := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		points[i] = geom.Pt(float64(rng.Intn(width)), float64(rng.Intn(height)))
	}
	return points
}

func generateGridPoints(n int, width, height int) []geom.Point {
	points := make([]geom.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// строк и столбцов может хватать, например, на 20 точек, а нужно 17
			if len(points) == n {
				break
			}
			x := xStep/2 + float64(j)*xStep
			y := yStep/2 + float64(i)*yStep
			points = append(points, geom.Pt(x, y))
		}
	}

	return points
}

// Целое значение поля формы, def если поля нет или оно некорректно
func formInt(r *http.Request, name string, def, lo, hi int) int {
	v, err := strconv.Atoi(r.FormValue(name))
	if err != nil {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// http обработчик страницы с диаграммой и формой для ввода данных
func diagramHandler(w http.ResponseWriter, r *http.Request) {
	width := 1000
	height := 1000
	numPoints := 12
	var seed int64
	var isRandom bool
	withVoronoi := true

	if r.Method == http.MethodPost {
		r.ParseForm()
		width = formInt(r, "width", width, 100, 5000)
		height = formInt(r, "height", height, 100, 5000)
		numPoints = formInt(r, "points", numPoints, 3, maxPoints)
		seed = int64(formInt(r, "seed", 0, 0, math.MaxInt32))
		isRandom = r.FormValue("random") == "true"
		withVoronoi = r.FormValue("voronoi") == "true"
	}

	var points []geom.Point
	if isRandom {
		points = generateRandPoints(numPoints, width, height, seed)
	} else {
		points = generateGridPoints(numPoints, width, height)
	}

	bbox := geom.NewBoundingBox(0, float64(width), 0, float64(height))

	log := logger.New()
	defer log.ClearLogs()

	log.Info("[app] Запрос", zap.Int("width", width), zap.Int("height", height), zap.Int("points", numPoints), zap.Bool("random", isRandom))

	fmt.Fprintln(w, static.Part1)

	var summary string
	tri, err := delaunay.Triangulate(points, delaunay.WithLogger(log))
	if err != nil {
		log.Error("[app] Ошибка триангуляции", zap.Error(err))
		summary = "Ошибка: " + err.Error()
	} else {
		var diagram *voronoi.Diagram
		if withVoronoi {
			diagram, err = voronoi.FromDelaunay(tri, voronoi.WithLogger(log))
			if err != nil {
				log.Error("[app] Ошибка построения диаграммы Вороного", zap.Error(err))
			}
		}

		summary = fmt.Sprintf("Точек: %d, треугольников: %d, ребер: %d", len(tri.Points()), len(tri.Triangles()), len(tri.Edges()))
		if diagram != nil {
			summary += fmt.Sprintf(", ячеек Вороного: %d", len(diagram.Cells()))
		}

		scatter := render.Chart(tri, diagram, bbox, "Триангуляция Делоне и диаграмма Вороного")
		if err := scatter.Render(w); err != nil {
			log.Error("[app] Ошибка рендеринга диаграммы", zap.Error(err))
		}
	}

	fmt.Fprintf(w, static.Part2, html.EscapeString(summary))

	// Вставляем логи в HTML
	log.UpdateLogs()
	for _, l := range log.Logs {
		fmt.Fprintln(w, l)
	}

	fmt.Fprintln(w, static.Part3)
}

func main() {
	http.HandleFunc("/", diagramHandler)
	fmt.Println("Сервер запущен на http://localhost:8080")
	err := http.ListenAndServe(":8080", nil)
	if err != nil {
		fmt.Println("Err ListenAndServe", err)
	}
}
