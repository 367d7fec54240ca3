package TimeIntegrator

import (
	"github.com/notargets/quasi1d/types"
)

/*
UnderRelaxationCheck flags every equation whose residual norm grew by more than a factor C since the previous
iteration. Flags are only ever set here, clearing them is up to the caller.
*/
func UnderRelaxationCheck(ResidPrevNorm, ResidNorm types.Triple, C float64, check *[3]bool) {
	for i := 0; i < 3; i++ {
		if ResidNorm[i] > C*ResidPrevNorm[i] {
			check[i] = true
		}
	}
}

// RelaxationState persists the under-relaxation flags and the last residual norm across iterations
type RelaxationState struct {
	Flags     [3]bool
	PrevNorm  types.Triple
	havePrev  bool
	FlagCount int // Iterations since a flag was last raised from a clean state
}

// Update checks ResidNorm against the stored norm, then stores it. The first call only records the norm
func (rs *RelaxationState) Update(ResidNorm types.Triple, C float64) {
	if rs.havePrev {
		wasSet := rs.Any()
		UnderRelaxationCheck(rs.PrevNorm, ResidNorm, C, &rs.Flags)
		if rs.Any() {
			if wasSet {
				rs.FlagCount++
			} else {
				rs.FlagCount = 1
			}
		}
	}
	rs.PrevNorm = ResidNorm
	rs.havePrev = true
}

func (rs *RelaxationState) Any() bool {
	return rs.Flags[0] || rs.Flags[1] || rs.Flags[2]
}

// Reset clears the flags, the stored norm is kept
func (rs *RelaxationState) Reset() {
	rs.Flags = [3]bool{}
	rs.FlagCount = 0
}

// Omega is the per equation relaxation factor: factor where flagged, 1 elsewhere
func (rs *RelaxationState) Omega(factor float64) (Omega types.Triple) {
	for i := 0; i < 3; i++ {
		Omega[i] = 1
		if rs.Flags[i] {
			Omega[i] = factor
		}
	}
	return
}
