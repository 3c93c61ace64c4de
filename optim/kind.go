package optim

// Kind enumerates the constraint kinds of a TFA problem. All kinds share
// one name namespace inside a problem and differ only by the prefix they
// put in front of the owner identifier; the row semantics documented on
// each constant are a convention between the assembly code and the
// solver, not enforced here.
type Kind uint8

const (
	// Generic is the unprefixed base kind. Concrete problems are expected
	// to use one of the prefixed kinds below.
	Generic Kind = iota

	// NegativeDeltaG is the ΔG balance equation of a reaction:
	//  G_rxn: -DGR_rxn + DGoRerr_rxn + RT·Σ ν_i·LC_i = 0
	NegativeDeltaG

	// ForwardDeltaGCoupling couples ΔG to the forward-use indicator:
	//  FU_rxn: 1000 FU_rxn + DGR_rxn < 1000
	ForwardDeltaGCoupling

	// BackwardDeltaGCoupling couples ΔG to the backward-use indicator:
	//  BU_rxn: 1000 BU_rxn - DGR_rxn < 1000
	BackwardDeltaGCoupling

	// ForwardDirectionCoupling links forward flux to the forward-use
	// indicator:
	//  UF_rxn: F_rxn - M·FU_rxn < 0
	ForwardDirectionCoupling

	// BackwardDirectionCoupling links backward flux to the backward-use
	// indicator:
	//  UR_rxn: R_rxn - M·BU_rxn < 0
	BackwardDirectionCoupling

	// SimultaneousUse forbids running a reaction in both directions at
	// once:
	//  SU_rxn: FU_rxn + BU_rxn <= 1
	SimultaneousUse

	// DisplacementCoupling links the log thermodynamic displacement to
	// ΔG:
	//  DC_rxn: ln(Γ_rxn) - DGR_rxn/RT = 0
	DisplacementCoupling

	// ForbiddenProfile excludes one combination of reaction
	// directionalities across the whole problem:
	//  FP_id: FU_rxn1 + BU_rxn2 + ... + FU_rxnN <= N-1
	// Not entity-bound; the identifier is supplied by the caller.
	ForbiddenProfile
)

var kindPrefixes = [...]string{
	Generic:                   "",
	NegativeDeltaG:            "G_",
	ForwardDeltaGCoupling:     "FU_",
	BackwardDeltaGCoupling:    "BU_",
	ForwardDirectionCoupling:  "UF_",
	BackwardDirectionCoupling: "UR_",
	SimultaneousUse:           "SU_",
	DisplacementCoupling:      "DC_",
	ForbiddenProfile:          "FP_",
}

var kindNames = [...]string{
	Generic:                   "generic",
	NegativeDeltaG:            "negative_delta_g",
	ForwardDeltaGCoupling:     "forward_delta_g_coupling",
	BackwardDeltaGCoupling:    "backward_delta_g_coupling",
	ForwardDirectionCoupling:  "forward_direction_coupling",
	BackwardDirectionCoupling: "backward_direction_coupling",
	SimultaneousUse:           "simultaneous_use",
	DisplacementCoupling:      "displacement_coupling",
	ForbiddenProfile:          "forbidden_profile",
}

// Prefix returns the short code the kind puts in front of identifiers.
func (k Kind) Prefix() string {
	if int(k) >= len(kindPrefixes) {
		return ""
	}
	return kindPrefixes[k]
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// makeName derives the problem-wide row name from an identifier. Plain
// concatenation: an identifier that already contains a prefix substring
// is not deduplicated ("FU_x" becomes "FU_FU_x").
func (k Kind) makeName(id string) string {
	return k.Prefix() + id
}
