package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Триангуляция точек из stdin: строки вида "x y", пустые строки и строки с # пропускаются.
// Печатает сводку, по запросу - треугольники, ближайшие сайты и картинку.
type config struct {
	random      int
	seed        int64
	width       float64
	height      float64
	superScale  float64
	withVoronoi bool
	list        bool
	queries     []string
	pngPath     string
	scale       float64
	size        int
	verbose     bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	app := kingpin.New("triangulate", "Триангуляция Делоне и диаграмма Вороного для точек из stdin.")
	app.Flag("random", "Сгенерировать N случайных точек вместо чтения stdin.").Short('r').IntVar(&cfg.random)
	app.Flag("seed", "Seed генератора случайных точек.").Default("1").Int64Var(&cfg.seed)
	app.Flag("width", "Ширина области случайных точек.").Default("1000").Float64Var(&cfg.width)
	app.Flag("height", "Высота области случайных точек.").Default("1000").Float64Var(&cfg.height)
	app.Flag("super-scale", "Во сколько раз супертреугольник больше области точек.").Default("100").Float64Var(&cfg.superScale)
	app.Flag("voronoi", "Построить диаграмму Вороного.").Short('V').BoolVar(&cfg.withVoronoi)
	app.Flag("list", "Напечатать треугольники.").Short('l').BoolVar(&cfg.list)
	app.Flag("query", "Точка \"x y\": содержащий треугольник и ближайший сайт. Можно повторять.").Short('q').StringsVar(&cfg.queries)
	app.Flag("png", "Сохранить картинку (формат по расширению).").StringVar(&cfg.pngPath)
	app.Flag("scale", "Пикселей на единицу координат.").Default("1").Float64Var(&cfg.scale)
	app.Flag("size", "Уменьшить картинку до SIZE пикселей по большей стороне.").IntVar(&cfg.size)
	app.Flag("verbose", "Отладочные логи в stderr.").Short('v').BoolVar(&cfg.verbose)

	if _, err := app.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.random < 0 {
		return config{}, errors.Errorf("--random must not be negative, got %d", cfg.random)
	}
	if cfg.scale <= 0 {
		return config{}, errors.Errorf("--scale must be positive, got %v", cfg.scale)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(2)
	}

	if cfg.random == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Введите точки \"x y\", по одной на строку. Конец ввода - Ctrl+D.")
	}

	level := zapcore.WarnLevel
	if cfg.verbose {
		level = zapcore.DebugLevel
	}
	log := logger.NewConsole(os.Stderr, level)
	au := aurora.NewAurora(term.IsTerminal(int(os.Stdout.Fd())))

	if err := run(cfg, os.Stdin, os.Stdout, log, au); err != nil {
		fmt.Fprintln(os.Stderr, au.Red(fmt.Sprintf("%+v", err)))
		os.Exit(1)
	}
}

func run(cfg config, in io.Reader, out io.Writer, log *logger.ZapLogger, au aurora.Aurora) error {
	var points []geom.Point
	if cfg.random > 0 {
		points = generatePoints(cfg.random, cfg.width, cfg.height, cfg.seed)
	} else {
		var err error
		if points, err = readPoints(in); err != nil {
			return err
		}
	}

	tri, err := delaunay.Triangulate(points,
		delaunay.WithLogger(log),
		delaunay.WithSuperTriangleScale(cfg.superScale),
	)
	if err != nil {
		return err
	}

	var diagram *voronoi.Diagram
	if cfg.withVoronoi || cfg.pngPath != "" || len(cfg.queries) > 0 {
		if diagram, err = voronoi.FromDelaunay(tri, voronoi.WithLogger(log)); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%s %d (%d skipped)\n", au.Cyan("points:"), len(tri.Points()), len(points)-len(tri.Points()))
	fmt.Fprintf(out, "%s %d\n", au.Cyan("triangles:"), len(tri.Triangles()))
	fmt.Fprintf(out, "%s %d\n", au.Cyan("edges:"), len(tri.Edges()))
	fmt.Fprintf(out, "%s %d\n", au.Cyan("hull edges:"), len(tri.HullEdges()))
	if cfg.withVoronoi {
		var open int
		for _, c := range diagram.Cells() {
			if c.Open {
				open++
			}
		}
		fmt.Fprintf(out, "%s %d (%d open)\n", au.Cyan("voronoi cells:"), len(diagram.Cells()), open)
		fmt.Fprintf(out, "%s %d\n", au.Cyan("voronoi edges:"), len(diagram.Edges()))
	}

	if cfg.list {
		for _, t := range tri.Triangles() {
			fmt.Fprintf(out, "%d %d %d\n", t.V[0], t.V[1], t.V[2])
		}
	}

	for _, q := range cfg.queries {
		p, err := parsePoint(q)
		if err != nil {
			return errors.Wrap(err, "--query")
		}
		if t, ok := tri.FindTriangle(p); ok {
			fmt.Fprintf(out, "%s %v %s %v\n", au.Green("query"), p, au.Green("triangle"), t)
		} else {
			fmt.Fprintf(out, "%s %v %s\n", au.Green("query"), p, au.Yellow("outside hull"))
		}
		site, _ := diagram.FindNearestSite(p)
		fmt.Fprintf(out, "%s %v %s %v\n", au.Green("query"), p, au.Green("nearest"), site)
	}

	if cfg.pngPath != "" {
		bbox := geom.BoundingBoxOf(tri.Points())
		bbox = bbox.Expanded(0.05 * max(bbox.Width(), bbox.Height()))
		img := render.Fit(render.Image(tri, diagram, bbox, cfg.scale), cfg.size)
		if err := render.Save(img, cfg.pngPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", au.Cyan("image:"), cfg.pngPath)
	}

	return nil
}

func generatePoints(n int, width, height float64, seed int64) []geom.Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Pt(rng.Float64()*width, rng.Float64()*height)
	}
	return points
}

func readPoints(in io.Reader) ([]geom.Point, error) {
	var points []geom.Point
	scanner := bufio.NewScanner(in)
	var n int
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read points")
	}
	return points, nil
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 2 {
		return geom.NoPoint, errors.Errorf("want \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.NoPoint, errors.Wrapf(err, "parse x in %q", line)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.NoPoint, errors.Wrapf(err, "parse y in %q", line)
	}
	return geom.Pt(x, y), nil
}
