package gconf

import (
	"encoding/json"
	"fmt"
	"os"
)

const DefaultFile = "jigsaw.json"

type Config struct {
	Theme     string `json:"theme"`      // light/dark
	Grid      int    `json:"grid"`       // 3/4/6/8
	ImagePath string `json:"image_path"` // last picked picture, empty = generated
	WindowH   int    `json:"window_h"`   //
	WindowW   int    `json:"window_w"`   //
	Mute      bool   `json:"mute"`       //
	Preview   bool   `json:"preview"`    // faint full-image hint under the pieces
	Debug     bool   `json:"debug"`      //

	path string
}

func defaultConfig() Config {
	return Config{
		Theme:   "light",
		Grid:    4,
		WindowH: 700,
		WindowW: 1000,
	}
}

// Default is the built-in configuration, for callers whose config file
// turned out unreadable.
func Default() *Config {
	def := defaultConfig()
	return &def
}

// NewGUIConfig loads the config file, falling back to defaults when it does
// not exist yet. Out-of-range values are corrected, not rejected.
func NewGUIConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		def.path = file
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %s", err)
	}
	c.path = file
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save() error {
	file := c.path
	if file == "" {
		file = DefaultFile
	}
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Grid != 3 && c.Grid != 4 && c.Grid != 6 && c.Grid != 8 {
		c.Grid = def.Grid
	}
	if c.ImagePath != "" {
		if _, err := os.Stat(c.ImagePath); err != nil {
			c.ImagePath = ""
		}
	}
	if c.WindowH < 480 || c.WindowW < 640 {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
