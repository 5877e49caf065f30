package blend

// Op is a Porter-Duff composite operation.
type Op uint8

const (
	OpSourceOver      Op = iota // S + D*(1-Sa) [default]
	OpSourceIn                  // S*Da
	OpSourceOut                 // S*(1-Da)
	OpAtop                      // S*Da + D*(1-Sa)
	OpDestinationOver           // S*(1-Da) + D
	OpDestinationIn             // D*Sa
	OpDestinationOut            // D*(1-Sa)
	OpDestinationAtop           // S*(1-Da) + D*Sa
	OpLighter                   // S + D
	OpCopy                      // S
	OpXor                       // S*(1-Da) + D*(1-Sa)
)

// OpState returns the blend factors implementing op.
// Unknown operations fall back to source-over.
func OpState(op Op) State {
	var sf, df Factor
	switch op {
	case OpSourceOver:
		sf, df = FactorOne, FactorOneMinusSrcAlpha
	case OpSourceIn:
		sf, df = FactorDstAlpha, FactorZero
	case OpSourceOut:
		sf, df = FactorOneMinusDstAlpha, FactorZero
	case OpAtop:
		sf, df = FactorDstAlpha, FactorOneMinusSrcAlpha
	case OpDestinationOver:
		sf, df = FactorOneMinusDstAlpha, FactorOne
	case OpDestinationIn:
		sf, df = FactorZero, FactorSrcAlpha
	case OpDestinationOut:
		sf, df = FactorZero, FactorOneMinusSrcAlpha
	case OpDestinationAtop:
		sf, df = FactorOneMinusDstAlpha, FactorSrcAlpha
	case OpLighter:
		sf, df = FactorOne, FactorOne
	case OpCopy:
		sf, df = FactorOne, FactorZero
	case OpXor:
		sf, df = FactorOneMinusDstAlpha, FactorOneMinusSrcAlpha
	default:
		sf, df = FactorOne, FactorOneMinusSrcAlpha
	}
	return State{SrcRGB: sf, DstRGB: df, SrcAlpha: sf, DstAlpha: df}
}
