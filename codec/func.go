package codec

// Func is a codec assembled from plain functions. Each *Func is its own kind.
type Func[V any] struct {
	encode    func(V) int64
	decode    func(int64) V
	normalize func(V) V
}

// New bundles encode, decode and normalize into a codec. A nil normalize
// stores values unchanged.
func New[V any](encode func(V) int64, decode func(int64) V, normalize func(V) V) *Func[V] {
	if normalize == nil {
		normalize = func(v V) V { return v }
	}

	return &Func[V]{
		encode:    encode,
		decode:    decode,
		normalize: normalize,
	}
}

// Encode calls the encode function.
func (f *Func[V]) Encode(value V) int64 {
	return f.encode(value)
}

// Decode calls the decode function.
func (f *Func[V]) Decode(key int64) V {
	return f.decode(key)
}

// Normalize calls the normalize function.
func (f *Func[V]) Normalize(value V) V {
	return f.normalize(value)
}
