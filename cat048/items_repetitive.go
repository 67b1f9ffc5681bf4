package cat048

import "github.com/skytrace/asterix/bitio"

// ModeSMBEntry is one Mode-S Comm-B register capture: 56 bits of MB data
// plus the BDS1/BDS2 register address nibbles that identify it.
type ModeSMBEntry struct {
	Data [7]byte
	BDS1 uint8
	BDS2 uint8
}

// ModeSMBData is repetitive Data Item I048/250: a leading REP octet
// followed by REP eight-byte entries, each carrying its own BDS1/BDS2
// register address alongside its 56 bits of MB data.
//
// Some summaries of this item describe REP's eight-byte entries as seven
// bytes of MB data followed by a single BDS1/BDS2 pair shared across the
// whole repetition group. That layout cannot represent a downlink whose
// captures span more than one BDS register, which a Comm-B reply commonly
// does, so each entry here carries its own register address instead.
type ModeSMBData struct {
	Entries []ModeSMBEntry
}

func (m *ModeSMBData) Decode(r *bitio.Reader) error {
	rep, err := r.ReadUint(8)
	if err != nil {
		return err
	}
	m.Entries = make([]ModeSMBEntry, rep)
	for i := range m.Entries {
		for j := range m.Entries[i].Data {
			v, err := r.ReadUint(8)
			if err != nil {
				return err
			}
			m.Entries[i].Data[j] = byte(v)
		}
		bds1, err := r.ReadUint(4)
		if err != nil {
			return err
		}
		bds2, err := r.ReadUint(4)
		if err != nil {
			return err
		}
		m.Entries[i].BDS1 = uint8(bds1)
		m.Entries[i].BDS2 = uint8(bds2)
	}

	return nil
}

func (m *ModeSMBData) Encode(w *bitio.Writer) error {
	w.WriteUint(uint64(len(m.Entries)), 8)
	for _, e := range m.Entries {
		for _, b := range e.Data {
			w.WriteUint(uint64(b), 8)
		}
		w.WriteUint(uint64(e.BDS1), 4)
		w.WriteUint(uint64(e.BDS2), 4)
	}

	return nil
}
