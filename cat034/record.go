package cat034

import (
	"github.com/skytrace/asterix/bitio"
	"github.com/skytrace/asterix/record"
)

// Record is one Category 034 message: an ordered set of optional Data
// Items, FRN 1-12.
type Record struct {
	DataSourceIdentifier         *DataSourceIdentifier
	MessageType                  *MessageType
	TimeOfDay                    *TimeOfDay
	SectorNumber                 *SectorNumber
	AntennaRotationSpeed         *AntennaRotationSpeed
	SystemConfigurationAndStatus *SystemConfigurationAndStatus
	SystemProcessingMode         *SystemProcessingMode
	MessageCountValues           *MessageCountValues
	GenericPolarWindow           *GenericPolarWindow
	DataFilter                   *DataFilter
	Position3DOfDataSource       *Position3DOfDataSource
	CollimationError             *CollimationError
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
			func(rd *bitio.Reader) error {
				r.DataSourceIdentifier = &DataSourceIdentifier{}
				return r.DataSourceIdentifier.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.DataSourceIdentifier.Encode(w) }),
		record.NewSlot(2,
			func() bool { return r.MessageType != nil },
			func(rd *bitio.Reader) error {
				r.MessageType = &MessageType{}
				return r.MessageType.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.MessageType.Encode(w) }),
		record.NewSlot(3,
			func() bool { return r.TimeOfDay != nil },
			func(rd *bitio.Reader) error {
				r.TimeOfDay = &TimeOfDay{}
				return r.TimeOfDay.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.TimeOfDay.Encode(w) }),
		record.NewSlot(4,
			func() bool { return r.SectorNumber != nil },
			func(rd *bitio.Reader) error {
				r.SectorNumber = &SectorNumber{}
				return r.SectorNumber.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.SectorNumber.Encode(w) }),
		record.NewSlot(5,
			func() bool { return r.AntennaRotationSpeed != nil },
			func(rd *bitio.Reader) error {
				r.AntennaRotationSpeed = &AntennaRotationSpeed{}
				return r.AntennaRotationSpeed.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.AntennaRotationSpeed.Encode(w) }),
		record.NewSlot(6,
			func() bool { return r.SystemConfigurationAndStatus != nil },
			func(rd *bitio.Reader) error {
				r.SystemConfigurationAndStatus = &SystemConfigurationAndStatus{}
				return r.SystemConfigurationAndStatus.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.SystemConfigurationAndStatus.Encode(w) }),
		record.NewSlot(7,
			func() bool { return r.SystemProcessingMode != nil },
			func(rd *bitio.Reader) error {
				r.SystemProcessingMode = &SystemProcessingMode{}
				return r.SystemProcessingMode.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.SystemProcessingMode.Encode(w) }),
		record.NewSlot(8,
			func() bool { return r.MessageCountValues != nil },
			func(rd *bitio.Reader) error {
				r.MessageCountValues = &MessageCountValues{}
				return r.MessageCountValues.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.MessageCountValues.Encode(w) }),
		record.NewSlot(9,
			func() bool { return r.GenericPolarWindow != nil },
			func(rd *bitio.Reader) error {
				r.GenericPolarWindow = &GenericPolarWindow{}
				return r.GenericPolarWindow.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.GenericPolarWindow.Encode(w) }),
		record.NewSlot(10,
			func() bool { return r.DataFilter != nil },
			func(rd *bitio.Reader) error {
				r.DataFilter = &DataFilter{}
				return r.DataFilter.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.DataFilter.Encode(w) }),
		record.NewSlot(11,
			func() bool { return r.Position3DOfDataSource != nil },
			func(rd *bitio.Reader) error {
				r.Position3DOfDataSource = &Position3DOfDataSource{}
				return r.Position3DOfDataSource.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.Position3DOfDataSource.Encode(w) }),
		record.NewSlot(12,
			func() bool { return r.CollimationError != nil },
			func(rd *bitio.Reader) error {
				r.CollimationError = &CollimationError{}
				return r.CollimationError.Decode(rd)
			},
			func(w *bitio.Writer) error { return r.CollimationError.Encode(w) }),
	}
}
