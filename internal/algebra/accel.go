package algebra

// VecOp is the signature of a registered vector accelerator: compute
// out[i] = a[i] OP b[i] for i in [0, len(a)), returning a non-nil error on
// failure. A non-nil error causes the caller to fall back to the scalar
// implementation, mirroring the original C source's gpu_add_vec/gpu_mul_vec
// falling back to simd_add4/simd_mul4 when no backend is registered or the
// backend call fails.
type VecOp func(a, b, out []float64) error

// Engine owns a pair of accelerator callback slots. Per SPEC_FULL.md's
// resolution of the "should these be process-wide" Open Question, the
// slots live on an Engine value rather than as package-level variables:
// two Engines in the same process can register different backends (or
// none) without interfering with each other.
type Engine struct {
	addVec VecOp
	mulVec VecOp
}

// NewEngine returns an Engine with no accelerator registered; Simplify
// calls on it always use the scalar fallback path.
func NewEngine() *Engine {
	return &Engine{}
}

// RegisterAddVec installs fn as this engine's vector-add accelerator.
// Passing nil clears it, reverting to the scalar fallback.
func (eng *Engine) RegisterAddVec(fn VecOp) { eng.addVec = fn }

// RegisterMulVec installs fn as this engine's vector-multiply accelerator.
// Passing nil clears it, reverting to the scalar fallback.
func (eng *Engine) RegisterMulVec(fn VecOp) { eng.mulVec = fn }

// addVec4 computes out[i] = a[i] + b[i], four at a time. It is the scalar
// fallback ported from the original C's simd_add4 (the #else branch: this
// module has no portable SIMD intrinsic to reach for, so it stays scalar).
func addVec4(a, b, out []float64) {
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		out[i+0] = a[i+0] + b[i+0]
		out[i+1] = a[i+1] + b[i+1]
		out[i+2] = a[i+2] + b[i+2]
		out[i+3] = a[i+3] + b[i+3]
	}
	for ; i < n; i++ {
		out[i] = a[i] + b[i]
	}
}

// mulVec4 computes out[i] = a[i] * b[i], four at a time. Scalar fallback
// ported from the original C's simd_mul4.
func mulVec4(a, b, out []float64) {
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		out[i+0] = a[i+0] * b[i+0]
		out[i+1] = a[i+1] * b[i+1]
		out[i+2] = a[i+2] * b[i+2]
		out[i+3] = a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		out[i] = a[i] * b[i]
	}
}
