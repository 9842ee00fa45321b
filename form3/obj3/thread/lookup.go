package thread

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownThread is returned by Lookup for names it cannot parse.
var ErrUnknownThread = errors.New("thread: unknown thread name")

// Lookup returns the thread form for a thread name. Accepted forms are
//
//	M6x1      ISO metric, diameter x pitch in millimetres
//	1/4-20    UTS, diameter in inches and threads per inch
//	#10-24    UTS numbered size
//	npt_1/2   National pipe thread by nominal size
//
// ext selects the external (rod) form over the internal (bore) form.
func Lookup(name string, ext bool) (Threader, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: empty name", ErrUnknownThread)
	case name[0] == 'M':
		return lookupISO(name, ext)
	case strings.HasPrefix(strings.ToLower(name), "npt_"):
		return lookupNPT(name, ext)
	}
	return lookupUTS(name, ext)
}

func lookupISO(name string, ext bool) (Threader, error) {
	d, p, ok := strings.Cut(name[1:], "x")
	if !ok {
		return nil, fmt.Errorf("%w: %q lacks pitch", ErrUnknownThread, name)
	}
	dia, err1 := strconv.ParseFloat(d, 64)
	pitch, err2 := strconv.ParseFloat(p, 64)
	if err1 != nil || err2 != nil || dia <= 0 || pitch <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownThread, name)
	}
	return ISO{D: dia, P: pitch, Ext: ext}, nil
}

func lookupUTS(name string, ext bool) (Threader, error) {
	i := strings.LastIndexByte(name, '-')
	if i <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownThread, name)
	}
	tpi, err := strconv.ParseFloat(name[i+1:], 64)
	if err != nil || tpi <= 0 {
		return nil, fmt.Errorf("%w: %q has bad threads per inch", ErrUnknownThread, name)
	}
	dia, err := parseInchSize(name[:i])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownThread, name, err)
	}
	return UTS{D: dia, TPI: tpi, Ext: ext}, nil
}

func lookupNPT(name string, ext bool) (Threader, error) {
	nominal, err := parseInchSize(name[len("npt_"):])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownThread, name, err)
	}
	npt := NPT{Ext: ext}
	if err := npt.SetFromNominal(nominal); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownThread, name, err)
	}
	return npt, nil
}

// parseInchSize parses sizes such as "#10", "1/4", "1" and "1-1/4" into inches.
func parseInchSize(s string) (float64, error) {
	if strings.HasPrefix(s, "#") {
		n, err := strconv.Atoi(s[1:])
		if err != nil || n < 0 {
			return 0, errors.New("bad numbered size")
		}
		return 0.060 + 0.013*float64(n), nil
	}
	whole, frac, hasWhole := strings.Cut(s, "-")
	if !hasWhole {
		if !strings.Contains(s, "/") {
			return parsePositive(s)
		}
		whole, frac = "0", s
	}
	w, err := strconv.ParseFloat(whole, 64)
	if err != nil || w < 0 {
		return 0, errors.New("bad whole inch size")
	}
	num, den, ok := strings.Cut(frac, "/")
	if !ok {
		return 0, errors.New("bad inch fraction")
	}
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || n <= 0 || d <= 0 {
		return 0, errors.New("bad inch fraction")
	}
	return w + n/d, nil
}

func parsePositive(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, errors.New("bad size")
	}
	return v, nil
}
