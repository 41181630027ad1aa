package ui

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"jigsaw/src"
	"jigsaw/src/logx"
	"jigsaw/src/puzzle"
	"jigsaw/ui/gui"
	"jigsaw/ui/gui/gbase/gconf"
)

const logfile string = "jigsaw.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	l := GetLogger(file, c)

	conf, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		l.Warnf("config: %v, using defaults", err)
		conf = gconf.Default()
	}
	// command line beats the config file
	if c.IsSet("mute") {
		conf.Mute = c.Bool("mute")
	}
	if c.IsSet("image") {
		conf.ImagePath = c.String("image")
	}
	if c.IsSet("grid") {
		conf.Grid = int(c.Int("grid"))
	}
	if c.Bool("debug") {
		conf.Debug = true
	}
	if !src.ValidGrid(conf.Grid) {
		return fmt.Errorf("unsupported grid %d (want one of %v)", conf.Grid, src.GridSizes)
	}

	session := src.NewGameSession(l, rand.New(rand.NewSource(time.Now().UnixNano())))
	g, err := gui.NewGUI(session, conf, l)
	if err != nil {
		return err
	}
	return g.Run()
}

// runSlice cuts a picture into grid x grid PNG files, no window needed.
func runSlice(c *cli.Command) error {
	return slicePieces(c.String("image"), int(c.Int("grid")), c.String("out"))
}

func slicePieces(path string, grid int, outDir string) error {
	if !src.ValidGrid(grid) {
		return fmt.Errorf("unsupported grid %d (want one of %v)", grid, src.GridSizes)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	b := img.Bounds()
	l, ok := puzzle.FitLayout(float64(b.Dx()), float64(b.Dy()), float64(b.Dx()), float64(b.Dy()), grid)
	if !ok {
		return fmt.Errorf("image %s has no usable area", path)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for row := 0; row < grid; row++ {
		for col := 0; col < grid; col++ {
			r := l.SourceRect(row, col).Add(b.Min)
			piece := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
			draw.Draw(piece, piece.Bounds(), img, r.Min, draw.Src)

			name := filepath.Join(outDir, fmt.Sprintf("%s_r%dc%d.png", base, row, col))
			out, err := os.Create(name)
			if err != nil {
				return err
			}
			if err := png.Encode(out, piece); err != nil {
				out.Close()
				return err
			}
			out.Close()
		}
	}
	fmt.Printf("wrote %d pieces to %s\n", grid*grid, outDir)
	return nil
}

// runLayout prints the board placement for the current terminal size, a
// quick way to see how much of the screen a given grid takes.
func runLayout(c *cli.Command) error {
	grid := int(c.Int("grid"))
	if !src.ValidGrid(grid) {
		return fmt.Errorf("unsupported grid %d (want one of %v)", grid, src.GridSizes)
	}

	cols, rows := 100, 40
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			cols, rows = w, h-2
		}
	}

	// a terminal cell is roughly twice as tall as wide
	l, ok := puzzle.FitLayout(4, 3, float64(cols), float64(rows*2), grid)
	if !ok {
		return fmt.Errorf("terminal too small (%dx%d)", cols, rows)
	}

	enableANSI()
	bx := int(l.BoardX)
	by := int(l.BoardY / 2)
	bw := int(l.BoardW)
	bh := int(l.BoardH / 2)
	if bw < grid || bh < grid {
		return fmt.Errorf("terminal too small (%dx%d)", cols, rows)
	}

	var sb strings.Builder
	for y := 0; y < by+bh+1; y++ {
		for x := 0; x < bx+bw+1; x++ {
			sb.WriteByte(layoutGlyph(x-bx, y-by, bw, bh, grid))
		}
		sb.WriteByte('\n')
	}
	fmt.Printf("board %dx%d cells at (%d,%d), %dx%d per piece\n", bw, bh, bx, by, bw/grid, bh/grid)
	fmt.Print(sb.String())
	return nil
}

func layoutGlyph(x, y, bw, bh, grid int) byte {
	if x < 0 || y < 0 || x > bw || y > bh {
		return ' '
	}
	onV := x%(bw/grid) == 0 || x == bw
	onH := y%(bh/grid) == 0 || y == bh
	switch {
	case onV && onH:
		return '+'
	case onV:
		return '|'
	case onH:
		return '-'
	default:
		return ' '
	}
}

func RunJigsaw() error {
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level",
		Value:   "info",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	conff := &cli.StringFlag{
		Name:  "config",
		Usage: "path to config file",
		Value: gconf.DefaultFile,
	}
	mf := &cli.BoolFlag{
		Name:  "mute",
		Usage: "start without sound",
	}
	imf := &cli.StringFlag{
		Name:  "image",
		Usage: "path to the puzzle picture",
	}
	gf := &cli.IntFlag{
		Name:  "grid",
		Usage: "pieces per side (3, 4, 6 or 8)",
		Value: 4,
	}

	guiff := []cli.Flag{df, lf, cf, conff, mf, imf, gf}
	sliceff := []cli.Flag{imf, gf, &cli.StringFlag{
		Name:  "out",
		Usage: "output directory",
		Value: "pieces",
	}}
	layoutff := []cli.Flag{gf}

	return (&cli.Command{
		Name:  "jigsaw",
		Usage: "jigsaw puzzle game",
		Flags: guiff,
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "open the game window (default)",
				Flags: guiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c); err != nil {
						fmt.Printf("error GUI: %v", err)
					}
					return nil
				},
			},
			{
				Name:   "slice",
				Usage:  "cut a picture into piece files",
				Flags:  sliceff,
				Action: func(ctx context.Context, c *cli.Command) error { return runSlice(c) },
			},
			{
				Name:   "layout",
				Usage:  "preview the board layout in the terminal",
				Flags:  layoutff,
				Action: func(ctx context.Context, c *cli.Command) error { return runLayout(c) },
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c); err != nil {
				fmt.Printf("error GUI: %v", err)
			}
			return nil
		},
	}).Run(context.Background(), os.Args)
}
