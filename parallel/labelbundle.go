package parallel

// LabelBundle is a fixed-width vector of (weight, valid) pairs: the
// per-vertex state label propagation both stores and exchanges as
// messages. Slots with valid=false carry no information and are treated
// as "no opinion" rather than 0 by every operation below except Merge,
// which treats them as the additive identity.
type LabelBundle struct {
	weights []float64
	valid   []bool
}

// NewLabelBundle returns a width-wide bundle with every slot invalid.
func NewLabelBundle(width int) LabelBundle {
	return LabelBundle{weights: make([]float64, width), valid: make([]bool, width)}
}

// NewUniformLabelBundle returns a width-wide bundle with every slot valid
// and set to value — used both as a literal uniform label and, via
// Divide, to broadcast a scalar denominator across every slot.
func NewUniformLabelBundle(width int, value float64) LabelBundle {
	b := NewLabelBundle(width)
	for i := range b.weights {
		b.weights[i] = value
		b.valid[i] = true
	}
	return b
}

// Width reports the number of slots in the bundle.
func (b LabelBundle) Width() int { return len(b.weights) }

// Get returns slot i's weight and whether it is valid.
func (b LabelBundle) Get(i int) (float64, bool) { return b.weights[i], b.valid[i] }

// Set assigns slot i and marks it valid.
func (b LabelBundle) Set(i int, w float64) {
	b.weights[i] = w
	b.valid[i] = true
}

func (b LabelBundle) clone() LabelBundle {
	weights := make([]float64, len(b.weights))
	valid := make([]bool, len(b.valid))
	copy(weights, b.weights)
	copy(valid, b.valid)
	return LabelBundle{weights: weights, valid: valid}
}

// add returns the elementwise sum of a and b, treating an invalid slot in
// either operand as 0; a slot is valid in the result iff it was valid in
// a or b. This is the monoid Merge implements.
func add(a, b LabelBundle) LabelBundle {
	n := len(a.weights)
	out := NewLabelBundle(n)
	for i := 0; i < n; i++ {
		var wa, wb float64
		if a.valid[i] {
			wa = a.weights[i]
		}
		if b.valid[i] {
			wb = b.weights[i]
		}
		out.weights[i] = wa + wb
		out.valid[i] = a.valid[i] || b.valid[i]
	}
	return out
}

// Merge implements Message: folding two bundles addressed to the same
// recipient sums their valid slots.
func (b LabelBundle) Merge(other Message) Message {
	return add(b, other.(LabelBundle))
}

// Scale multiplies every valid slot's weight by s.
func (b LabelBundle) Scale(s float64) LabelBundle {
	out := b.clone()
	for i := range out.weights {
		if out.valid[i] {
			out.weights[i] *= s
		}
	}
	return out
}

// AddScalar adds s to every valid slot's weight, leaving invalid slots
// untouched.
func (b LabelBundle) AddScalar(s float64) LabelBundle {
	out := b.clone()
	for i := range out.weights {
		if out.valid[i] {
			out.weights[i] += s
		}
	}
	return out
}

// ConditionalAdd adds s to every slot that is valid in where, regardless
// of this bundle's own validity at that slot (a slot gains validity if
// where says it should have a value).
func (b LabelBundle) ConditionalAdd(s float64, where LabelBundle) LabelBundle {
	out := b.clone()
	for i := range out.weights {
		if where.valid[i] {
			out.weights[i] += s
			out.valid[i] = true
		}
	}
	return out
}

// FillMissingFrom returns a copy of b with every invalid slot replaced by
// other's value (and validity) at that slot.
func (b LabelBundle) FillMissingFrom(other LabelBundle) LabelBundle {
	out := b.clone()
	for i := range out.weights {
		if !out.valid[i] && other.valid[i] {
			out.weights[i] = other.weights[i]
			out.valid[i] = true
		}
	}
	return out
}

// Divide returns the elementwise quotient b/other. A slot is valid in the
// result only if both operands are valid there; dividing by a zero
// (valid) denominator yields an invalid slot rather than +Inf/NaN.
func (b LabelBundle) Divide(other LabelBundle) LabelBundle {
	out := NewLabelBundle(len(b.weights))
	for i := range b.weights {
		if !b.valid[i] || !other.valid[i] || other.weights[i] == 0 {
			continue
		}
		out.weights[i] = b.weights[i] / other.weights[i]
		out.valid[i] = true
	}
	return out
}
