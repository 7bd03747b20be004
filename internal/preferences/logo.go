package preferences

import (
	"errors"
	"sort"
)

const DefaultLogo = "logo2"

var ErrUnknownLogo = errors.New("unknown logo")

// Logos maps the selectable logo keys to their asset paths.
var Logos = map[string]string{
	"logo1": "/assets/logos/logo1.png",
	"logo2": "/assets/logos/logo2.png",
	"logo3": "/assets/logos/logo3.png",
	"logo4": "/assets/logos/logo4.png",
}

type Logo struct {
	Key  string `json:"key"`
	Path string `json:"path"`
}

func LogoFor(key string) (Logo, error) {
	path, ok := Logos[key]
	if !ok {
		return Logo{}, ErrUnknownLogo
	}
	return Logo{Key: key, Path: path}, nil
}

func AllLogos() []Logo {
	keys := make([]string, 0, len(Logos))
	for k := range Logos {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	logos := make([]Logo, 0, len(keys))
	for _, k := range keys {
		logos = append(logos, Logo{Key: k, Path: Logos[k]})
	}
	return logos
}
