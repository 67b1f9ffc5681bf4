package cat048

import (
	"github.com/skytrace/asterix/bitio"
	"github.com/skytrace/asterix/record"
)

// Record is one Category 048 message: an ordered set of optional Data
// Items, FRN 1-26.
type Record struct {
	DataSourceIdentifier                  *DataSourceIdentifier
	TimeOfDay                             *TimeOfDay
	TargetReportDescriptor                *TargetReportDescriptor
	MeasuredPosition                      *MeasuredPosition
	Mode3ACode                            *Mode3ACode
	FlightLevel                           *FlightLevel
	RadarPlotCharacteristics              *RadarPlotCharacteristics
	AircraftAddress                       *AircraftAddress
	AircraftIdentification                *AircraftIdentification
	ModeSMBData                           *ModeSMBData
	TrackNumber                           *TrackNumber
	CalculatedPosition                    *CalculatedPosition
	CalculatedTrackVelocity               *CalculatedTrackVelocity
	TrackStatus                           *TrackStatus
	TrackQuality                          *TrackQuality
	WarningErrorConditions                *WarningErrorConditions
	Mode3AConfidence                      *Mode3AConfidence
	ModeCCodeAndConfidence                *ModeCCodeAndConfidence
	HeightBy3DRadar                       *HeightBy3DRadar
	RadialDopplerSpeed                    *RadialDopplerSpeed
	CommunicationsCapabilityFlightStatus  *CommunicationsCapabilityFlightStatus
	ACASResolutionAdvisory                *ACASResolutionAdvisory
	Mode1Code                             *OctalCode
	Mode2Code                             *OctalCode
	Mode1Confidence                       *Mode3AConfidence
	Mode2Confidence                       *Mode3AConfidence
}

// New returns an empty Record with no Data Items present.
func New() *Record {
	return &Record{}
}

// Slots implements record.Definition in ascending FRN order.
func (r *Record) Slots() []record.Slot {
	return []record.Slot{
		record.NewSlot(1,
			func() bool { return r.DataSourceIdentifier != nil },
			func(rd *bitio.Reader) error { r.DataSourceIdentifier = &DataSourceIdentifier{}; return r.DataSourceIdentifier.Decode(rd) },
			func(w *bitio.Writer) error { return r.DataSourceIdentifier.Encode(w) }),
		record.NewSlot(2,
			func() bool { return r.TimeOfDay != nil },
			func(rd *bitio.Reader) error { r.TimeOfDay = &TimeOfDay{}; return r.TimeOfDay.Decode(rd) },
			func(w *bitio.Writer) error { return r.TimeOfDay.Encode(w) }),
		record.NewSlot(3,
			func() bool { return r.TargetReportDescriptor != nil },
			func(rd *bitio.Reader) error {
				r.TargetReportDescriptor = &TargetReportDescriptor{}
				return r.TargetReportDescriptor.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.TargetReportDescriptor.Encode(w) }),
		record.NewSlot(4,
			func() bool { return r.MeasuredPosition != nil },
			func(rd *bitio.Reader) error { r.MeasuredPosition = &MeasuredPosition{}; return r.MeasuredPosition.Decode(rd) },
			func(w *bitio.Writer) error { return r.MeasuredPosition.Encode(w) }),
		record.NewSlot(5,
			func() bool { return r.Mode3ACode != nil },
			func(rd *bitio.Reader) error { r.Mode3ACode = &Mode3ACode{}; return r.Mode3ACode.Decode(rd) },
			func(w *bitio.Writer) error { return r.Mode3ACode.Encode(w) }),
		record.NewSlot(6,
			func() bool { return r.FlightLevel != nil },
			func(rd *bitio.Reader) error { r.FlightLevel = &FlightLevel{}; return r.FlightLevel.Decode(rd) },
			func(w *bitio.Writer) error { return r.FlightLevel.Encode(w) }),
		record.NewSlot(7,
			func() bool { return r.RadarPlotCharacteristics != nil },
			func(rd *bitio.Reader) error {
				r.RadarPlotCharacteristics = &RadarPlotCharacteristics{}
				return r.RadarPlotCharacteristics.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.RadarPlotCharacteristics.Encode(w) }),
		record.NewSlot(8,
			func() bool { return r.AircraftAddress != nil },
			func(rd *bitio.Reader) error { r.AircraftAddress = &AircraftAddress{}; return r.AircraftAddress.Decode(rd) },
			func(w *bitio.Writer) error { return r.AircraftAddress.Encode(w) }),
		record.NewSlot(9,
			func() bool { return r.AircraftIdentification != nil },
			func(rd *bitio.Reader) error {
				r.AircraftIdentification = &AircraftIdentification{}
				return r.AircraftIdentification.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.AircraftIdentification.Encode(w) }),
		record.NewSlot(10,
			func() bool { return r.ModeSMBData != nil },
			func(rd *bitio.Reader) error { r.ModeSMBData = &ModeSMBData{}; return r.ModeSMBData.Decode(rd) },
			func(w *bitio.Writer) error { return r.ModeSMBData.Encode(w) }),
		record.NewSlot(11,
			func() bool { return r.TrackNumber != nil },
			func(rd *bitio.Reader) error { r.TrackNumber = &TrackNumber{}; return r.TrackNumber.Decode(rd) },
			func(w *bitio.Writer) error { return r.TrackNumber.Encode(w) }),
		record.NewSlot(12,
			func() bool { return r.CalculatedPosition != nil },
			func(rd *bitio.Reader) error { r.CalculatedPosition = &CalculatedPosition{}; return r.CalculatedPosition.Decode(rd) },
			func(w *bitio.Writer) error { return r.CalculatedPosition.Encode(w) }),
		record.NewSlot(13,
			func() bool { return r.CalculatedTrackVelocity != nil },
			func(rd *bitio.Reader) error {
				r.CalculatedTrackVelocity = &CalculatedTrackVelocity{}
				return r.CalculatedTrackVelocity.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.CalculatedTrackVelocity.Encode(w) }),
		record.NewSlot(14,
			func() bool { return r.TrackStatus != nil },
			func(rd *bitio.Reader) error { r.TrackStatus = &TrackStatus{}; return r.TrackStatus.Decode(rd) },
			func(w *bitio.Writer) error { return r.TrackStatus.Encode(w) }),
		record.NewSlot(15,
			func() bool { return r.TrackQuality != nil },
			func(rd *bitio.Reader) error { r.TrackQuality = &TrackQuality{}; return r.TrackQuality.Decode(rd) },
			func(w *bitio.Writer) error { return r.TrackQuality.Encode(w) }),
		record.NewSlot(16,
			func() bool { return r.WarningErrorConditions != nil },
			func(rd *bitio.Reader) error {
				r.WarningErrorConditions = &WarningErrorConditions{}
				return r.WarningErrorConditions.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.WarningErrorConditions.Encode(w) }),
		record.NewSlot(17,
			func() bool { return r.Mode3AConfidence != nil },
			func(rd *bitio.Reader) error { r.Mode3AConfidence = &Mode3AConfidence{}; return r.Mode3AConfidence.Decode(rd) },
			func(w *bitio.Writer) error { return r.Mode3AConfidence.Encode(w) }),
		record.NewSlot(18,
			func() bool { return r.ModeCCodeAndConfidence != nil },
			func(rd *bitio.Reader) error {
				r.ModeCCodeAndConfidence = &ModeCCodeAndConfidence{}
				return r.ModeCCodeAndConfidence.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.ModeCCodeAndConfidence.Encode(w) }),
		record.NewSlot(19,
			func() bool { return r.HeightBy3DRadar != nil },
			func(rd *bitio.Reader) error { r.HeightBy3DRadar = &HeightBy3DRadar{}; return r.HeightBy3DRadar.Decode(rd) },
			func(w *bitio.Writer) error { return r.HeightBy3DRadar.Encode(w) }),
		record.NewSlot(20,
			func() bool { return r.RadialDopplerSpeed != nil },
			func(rd *bitio.Reader) error { r.RadialDopplerSpeed = &RadialDopplerSpeed{}; return r.RadialDopplerSpeed.Decode(rd) },
			func(w *bitio.Writer) error { return r.RadialDopplerSpeed.Encode(w) }),
		record.NewSlot(21,
			func() bool { return r.CommunicationsCapabilityFlightStatus != nil },
			func(rd *bitio.Reader) error {
				r.CommunicationsCapabilityFlightStatus = &CommunicationsCapabilityFlightStatus{}
				return r.CommunicationsCapabilityFlightStatus.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.CommunicationsCapabilityFlightStatus.Encode(w) }),
		record.NewSlot(22,
			func() bool { return r.ACASResolutionAdvisory != nil },
			func(rd *bitio.Reader) error {
				r.ACASResolutionAdvisory = &ACASResolutionAdvisory{}
				return r.ACASResolutionAdvisory.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.ACASResolutionAdvisory.Encode(w) }),
		record.NewSlot(23,
			func() bool { return r.Mode1Code != nil },
			func(rd *bitio.Reader) error { r.Mode1Code = &OctalCode{}; return r.Mode1Code.Decode(rd) },
			func(w *bitio.Writer) error { return r.Mode1Code.Encode(w) }),
		record.NewSlot(24,
			func() bool { return r.Mode2Code != nil },
			func(rd *bitio.Reader) error { r.Mode2Code = &OctalCode{}; return r.Mode2Code.Decode(rd) },
			func(w *bitio.Writer) error { return r.Mode2Code.Encode(w) }),
		record.NewSlot(25,
			func() bool { return r.Mode1Confidence != nil },
			func(rd *bitio.Reader) error { r.Mode1Confidence = &Mode3AConfidence{}; return r.Mode1Confidence.Decode(rd) },
			func(w *bitio.Writer) error { return r.Mode1Confidence.Encode(w) }),
		record.NewSlot(26,
			func() bool { return r.Mode2Confidence != nil },
			func(rd *bitio.Reader) error { r.Mode2Confidence = &Mode3AConfidence{}; return r.Mode2Confidence.Decode(rd) },
			func(w *bitio.Writer) error { return r.Mode2Confidence.Encode(w) }),
	}
}
