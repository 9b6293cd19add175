// Package buildtype guesses whether a renderer was built in a development or
// production configuration.
//
// Renderers rarely expose an authoritative build signal, so classification
// is a heuristic over a structured [Descriptor]: the presence of a version
// string, a bundle-type flag, and pre-extracted source text of a couple of
// well-known functions. The rules are ordered and the first match wins.
// Classification is advisory — it is allowed to be wrong, and every internal
// fault resolves to [Production] rather than surfacing, because the calling
// hook must never crash its host.
package buildtype

import (
	"regexp"
	"strings"
)

// BuildType is the classifier's verdict.
type BuildType string

const (
	// Development means the renderer looks like an unminified dev build.
	Development BuildType = "development"
	// Production is the optimistic default whenever introspection is
	// unreliable or inconclusive.
	Production BuildType = "production"
	// Outdated means a legacy renderer too old for helper tooling to attach.
	Outdated BuildType = "outdated"
)

// Descriptor describes the build-relevant surface of a renderer. Fields are
// extracted up front by whoever owns the live renderer so classification
// stays a pure function.
type Descriptor struct {
	// Version is the renderer's version string. A non-empty value marks the
	// newer runtime family.
	Version string

	// BundleType is the renderer's numeric build flag; dev bundles report a
	// positive value.
	BundleType int

	// FindFiberSource is the stringified source of the renderer's fiber
	// lookup function, used when BundleType gives no signal.
	FindFiberSource string

	// HasMount marks the older runtime family: a renderer exposing the
	// legacy mounting object.
	HasMount bool

	// RenderRootSource is the stringified source of the legacy root-render
	// function.
	RenderRootSource string
}

// Describer is the optional capability a renderer handle exposes so the hook
// can classify it at registration time.
type Describer interface {
	BuildDescriptor() Descriptor
}

// Source markers the heuristics key on. Development builds leak internal
// instrumentation names and full warning prose; minification strips both.
const (
	devInstrumentationMarker = "storedMeasure"
	devWarningMarker         = "should be a pure function"
	legacyRegisterMarker     = "._registerComponent"
)

// firstParamRe extracts the first parameter name of a stringified function
// definition. A single-character name is the minification proxy.
var firstParamRe = regexp.MustCompile(`^function\s*\(\s*([A-Za-z_$][0-9A-Za-z_$]*)`)

// Detect classifies the renderer handle passed to the hook at registration.
// Handles that expose no descriptor, and descriptors whose extraction
// panics, resolve to Production.
func Detect(renderer any) (bt BuildType) {
	defer func() {
		if recover() != nil {
			bt = Production
		}
	}()

	d, ok := renderer.(Describer)
	if !ok || d == nil {
		return Production
	}
	return Classify(d.BuildDescriptor())
}

// Classify applies the ordered heuristics to a descriptor. It never panics;
// any internal fault is absorbed into Production.
func Classify(d Descriptor) (bt BuildType) {
	defer func() {
		if recover() != nil {
			bt = Production
		}
	}()

	switch {
	case d.Version != "":
		if d.BundleType > 0 {
			return Development
		}
		return classifyModern(d.FindFiberSource)
	case d.HasMount:
		return classifyLegacy(d.RenderRootSource)
	}
	return Production
}

// classifyModern inspects the fiber lookup function of a versioned renderer
// whose bundle flag claims production.
func classifyModern(src string) BuildType {
	if !strings.HasPrefix(src, "function") {
		// Can't introspect the source; hope for the best.
		return Production
	}
	if !minified(src) {
		// Readable parameter names mean a dev build slipped through
		// envification.
		return Development
	}
	return Production
}

// classifyLegacy inspects the root-render function of a renderer from the
// older mounting family.
func classifyLegacy(src string) BuildType {
	if !strings.HasPrefix(src, "function") {
		return Production
	}
	if strings.Contains(src, devInstrumentationMarker) {
		return Development
	}
	if strings.Contains(src, devWarningMarker) {
		return Development
	}
	if !minified(src) {
		return Development
	}
	if strings.Contains(src, legacyRegisterMarker) {
		return Outdated
	}
	return Production
}

// minified reports whether the function source's first parameter matches the
// single-character identifier pattern.
func minified(src string) bool {
	m := firstParamRe.FindStringSubmatch(src)
	if m == nil {
		return false
	}
	return len(m[1]) == 1
}
