package thread

import (
	"fmt"

	"github.com/soypat/fanmount/sdf"
)

// UTS is a Unified Thread Standard thread. Dimensions are given
// in inches and the generated geometry is in millimetres.
// Example: UNC 1/4 with external threading would be
//
//	UTS{D:1.0/4.0, TPI:20, Ext: true}
type UTS struct {
	D   float64 // major diameter [in]
	TPI float64 // threads per inch
	// External or internal thread.
	Ext bool
}

var _ Threader = UTS{} // Interface implementation.

func (uts UTS) iso() ISO {
	return ISO{D: uts.D * sdf.MillimetresPerInch, P: sdf.MillimetresPerInch / uts.TPI, Ext: uts.Ext}
}

func (uts UTS) Parameters() Parameters {
	p := uts.iso().Parameters()
	p.Name = fmt.Sprintf("UTS %gin-%g", uts.D, uts.TPI)
	return p
}

func (uts UTS) Thread() (sdf.SDF2, error) {
	return uts.iso().Thread()
}
