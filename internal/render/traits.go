package render

import (
	"slices"

	"esg-sunshine/internal/domain"
)

type Trait string

const (
	TraitOptimization Trait = "optimization"
	TraitGapFilling   Trait = "gap-filling"
	TraitTagging      Trait = "tagging"
	TraitPerformance  Trait = "performance"
	TraitLearning     Trait = "learning"
	TraitEvolution    Trait = "evolution"
	TraitBridging     Trait = "bridging"
	TraitSeamless     Trait = "seamless"
)

// AllTraits lists every trait in application order.
var AllTraits = []Trait{
	TraitOptimization,
	TraitGapFilling,
	TraitTagging,
	TraitPerformance,
	TraitLearning,
	TraitEvolution,
	TraitBridging,
	TraitSeamless,
}

// decorator adjusts presentation fields of v. It must not change Label,
// Value, SubValue or the trend value.
type decorator func(v *View, c Cell)

var decorators = map[Trait]decorator{
	TraitOptimization: optimization,
	TraitGapFilling:   gapFilling,
	TraitTagging:      tagging,
	TraitPerformance:  performance,
	TraitLearning:     learning,
	TraitEvolution:    evolution,
	TraitBridging:     bridging,
	TraitSeamless:     seamless,
}

// normalizeTraits deduplicates ts and sorts it into AllTraits order.
func normalizeTraits(ts []Trait) []Trait {
	var out []Trait
	for _, t := range AllTraits {
		if slices.Contains(ts, t) {
			out = append(out, t)
		}
	}
	return out
}

func framed(v *View) bool { return v.Mode != ModeBadge }

func optimization(v *View, _ Cell) {
	if framed(v) {
		v.Classes = append(v.Classes, "animate-ai-pulse", "ring-1", "ring-white/10")
	}
}

func gapFilling(v *View, _ Cell) {
	if !framed(v) {
		return
	}
	v.Classes = replace(v.Classes, "border-white/5", "border-dashed", "border-white/20")
	ind := Indicator{Kind: "gap-filling", Icon: "puzzle"}
	switch v.Mode {
	case ModeCard:
		ind.Label = "AI Filled"
	case ModeList:
		ind.Icon = ""
		ind.Label = "●"
	}
	v.Indicators = append(v.Indicators, ind)
}

func tagging(v *View, c Cell) {
	switch v.Mode {
	case ModeCard:
		for _, tag := range c.Tags {
			v.Indicators = append(v.Indicators, Indicator{Kind: "tag", Icon: "tag", Label: tag})
		}
	case ModeList:
		if len(c.Tags) > 0 {
			v.Indicators = append(v.Indicators, Indicator{Kind: "tag", Label: c.Tags[0]})
		}
	}
}

func performance(v *View, _ Cell) {
	if v.Trend == nil || v.Trend.Direction != domain.TrendUp {
		return
	}
	v.Trend.Icon = "rocket"
	v.Trend.Classes = append(v.Trend.Classes, "animate-pulse")
}

func learning(v *View, _ Cell) {
	if framed(v) {
		v.Indicators = append(v.Indicators, Indicator{Kind: "learning", Icon: "brain-circuit", Label: "Self-Learning Active", Classes: []string{"animate-pulse"}})
	}
}

func evolution(v *View, _ Cell) {
	if framed(v) {
		v.Indicators = append(v.Indicators, Indicator{Kind: "evolution", Icon: "infinity", Classes: []string{"opacity-5", "animate-pulse"}})
	}
}

func bridging(v *View, _ Cell) {
	if !framed(v) {
		v.Indicators = append(v.Indicators, Indicator{Kind: "bridging", Icon: "git-merge", Classes: []string{"text-blue-400", "rotate-90"}})
		return
	}
	v.Indicators = append(v.Indicators,
		Indicator{Kind: "connector-top", Classes: []string{"bg-gradient-to-b", "from-white/20"}},
		Indicator{Kind: "connector-bottom", Classes: []string{"bg-gradient-to-t", "from-white/20"}},
	)
}

func seamless(v *View, _ Cell) {
	if !framed(v) {
		return
	}
	v.Classes = slices.DeleteFunc(v.Classes, func(c string) bool {
		switch c {
		case "backdrop-blur-xl", "bg-slate-900/40", "border", "border-white/5", "border-dashed", "border-white/20", "shadow-lg":
			return true
		}
		return false
	})
	v.Classes = append(v.Classes, "bg-transparent", "border-none")
	if v.Mode != ModeCell {
		v.ValueClass = append(v.ValueClass, v.Theme.Text)
	}
}

func replace(classes []string, old string, with ...string) []string {
	i := slices.Index(classes, old)
	if i < 0 {
		return append(classes, with...)
	}
	return slices.Concat(classes[:i:i], with, classes[i+1:])
}
