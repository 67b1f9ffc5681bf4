// Package cat034 implements the ASTERIX Category 034 (Monoradar Service
// Messages) Data Item catalog and Record definition, FRN 1-12:
// DataSourceIdentifier, MessageType, TimeOfDay, SectorNumber,
// AntennaRotationSpeed, SystemConfigurationAndStatus (compound),
// SystemProcessingMode (compound), MessageCountValues (repetitive),
// GenericPolarWindow, DataFilter, Position3DOfDataSource, and
// CollimationError. The compound and repetitive items exercise the same
// Data Item shapes cat048 exercises for Category 048.
package cat034
