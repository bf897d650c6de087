package segment

import (
	"github.com/cognicore/farahidi/pkg/farahidi/catalogue"
	"github.com/cognicore/farahidi/pkg/farahidi/prosody"
)

// Segmenter partitions a skeleton into feet.
type Segmenter struct {
	feet []*catalogue.Foot // longest canonical pattern first
}

// New creates a segmenter over the feet of the given catalogue.
func New(cat *catalogue.Catalogue) *Segmenter {
	return &Segmenter{feet: cat.ByLength()}
}

// Segment applies greedy longest-match to the skeleton.
//
// At each position the feet are tried longest canonical pattern first. For
// each foot the canonical pattern is tested, then its registered variants in
// order, each against the next len(variant) symbols; the first match is
// taken and consumes its own length. When nothing matches, one symbol is
// skipped. Earlier choices are never revisited.
func (s *Segmenter) Segment(skel prosody.Skeleton) []prosody.DetectedFoot {
	var feet []prosody.DetectedFoot
	i := 0

	for i < skel.Len() {
		foot, ok := s.matchAt(skel, i)
		if !ok {
			i++
			continue
		}
		feet = append(feet, foot)
		i += foot.Len()
	}

	return feet
}

func (s *Segmenter) matchAt(skel prosody.Skeleton, pos int) (prosody.DetectedFoot, bool) {
	for _, f := range s.feet {
		if w, ok := skel.Window(pos, len(f.Pattern)); ok && w == f.Pattern {
			return prosody.DetectedFoot{
				Name:      f.Name,
				Position:  pos,
				Pattern:   w,
				Letters:   skel.LettersAt(pos, len(w)),
				Canonical: true,
			}, true
		}

		for _, v := range f.Variants {
			if w, ok := skel.Window(pos, len(v.Pattern)); ok && w == v.Pattern {
				lic := v.License
				return prosody.DetectedFoot{
					Name:     f.Name,
					Position: pos,
					Pattern:  w,
					Letters:  skel.LettersAt(pos, len(w)),
					License:  &lic,
				}, true
			}
		}
	}

	return prosody.DetectedFoot{}, false
}

// Unscanned returns the skeleton positions not covered by any foot.
func Unscanned(skel prosody.Skeleton, feet []prosody.DetectedFoot) []int {
	covered := make([]bool, skel.Len())
	for _, f := range feet {
		for i := f.Position; i < f.Position+f.Len() && i < len(covered); i++ {
			covered[i] = true
		}
	}

	var out []int
	for i, c := range covered {
		if !c {
			out = append(out, i)
		}
	}
	return out
}
