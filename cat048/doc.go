// Package cat048 implements the ASTERIX Category 048 (Monoradar Target
// Reports) Data Item catalog and Record definition, FRN 1-26: see the
// type-level comments in this package for each Data Item's wire shape.
//
// RadarPlotCharacteristics (FRN7) gives its rpd and apd subfields
// independent sub-FSPEC bits (rpd on sub-FSPEC FRN 6, bit 2; apd on
// sub-FSPEC FRN 7, bit 1), so a compound item with 7 independent subfield slots can
// represent every combination of the two; a layout that shared one
// presence bit across both would make one of them unrepresentable.
// ModeSMBData carries one BDS1/BDS2 register-address pair per repeated
// Comm-B entry rather than a single trailing pair for the whole list,
// matching how ASTERIX I048/250 is structured on the wire: each Mode-S
// register capture identifies its own BDS code.
// Mode-1 and Mode-2 code/confidence (FRN23-26) reuse the Mode-3/A layout
// shape, since all three octal-code families share the same bit layout.
package cat048
