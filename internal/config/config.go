package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Addr      string    `koanf:"addr"`
	Frontend  Frontend  `koanf:"frontend"`
	Calendar  Calendar  `koanf:"calendar"`
	Grid      Grid      `koanf:"grid"`
	Assistant Assistant `koanf:"assistant"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

type Calendar struct {
	// Demo seeds the store with a handful of sample events on startup.
	Demo bool `koanf:"demo"`
}

// Grid describes the week-view geometry the drag math depends on:
// one hour of wall-clock time occupies PixelsPerHour vertical pixels, and
// day columns are separated by ColumnGapPx.
type Grid struct {
	PixelsPerHour int `koanf:"pixelsperhour"`
	ColumnGapPx   int `koanf:"columngappx"`
}

type Assistant struct {
	// ReplyDelayMs is a purely cosmetic pause before the assistant answers.
	ReplyDelayMs int `koanf:"replydelayms"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr: ":8181",
		Frontend: Frontend{
			Enabled: true,
		},
		Calendar: Calendar{
			Demo: false,
		},
		Grid: Grid{
			PixelsPerHour: 60,
			ColumnGapPx:   8,
		},
		Assistant: Assistant{
			ReplyDelayMs: 500,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "JELLYCAL_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "JELLYCAL_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
