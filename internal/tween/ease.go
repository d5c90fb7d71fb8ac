package tween

import (
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
)

// Ease is a gween easing curve: (elapsed, begin, change, duration) -> value.
type Ease = ease.TweenFunc

// ErrUnknownEase is returned by ParseEase for names it does not know.
var ErrUnknownEase = errors.New("tween: unknown ease")

// Linear is the identity curve ("none" in GSAP naming).
var Linear Ease = ease.Linear

// GSAP's powerN is one degree above its name: power1 is quadratic, power2 cubic.
var powerEases = map[string]Ease{
	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inOut": ease.InOutQuad,
	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inOut": ease.InOutCubic,
	"power3.in":    ease.InQuart,
	"power3.out":   ease.OutQuart,
	"power3.inOut": ease.InOutQuart,
	"power4.in":    ease.InQuint,
	"power4.out":   ease.OutQuint,
	"power4.inOut": ease.InOutQuint,
}

// Progress evaluates e at linear progress p in [0,1].
func Progress(e Ease, p float32) float32 {
	return e(p, 0, 1, 1)
}

// ParseEase resolves a GSAP-style ease name such as "power2.inOut".
// A bare "powerN" means "powerN.out".
func ParseEase(name string) (Ease, error) {
	switch name {
	case "none", "linear":
		return Linear, nil
	}
	if e, ok := powerEases[name]; ok {
		return e, nil
	}
	if e, ok := powerEases[name+".out"]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
}
