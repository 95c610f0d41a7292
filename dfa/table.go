package dfa

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// tableMagic identifies a serialized transition table; tableVersion lets a
// future layout change refuse to load tables written by an older build.
const (
	tableMagic   = uint32(0x4c584354) // "LXCT"
	tableVersion = uint16(1)
)

// MarshalBinary encodes the DFA's transition table in the row layout
// described by spec §4.6: a header, then per row its length, accept id,
// flags, ref mask, default target, and sorted disjoint transition triples.
// No library in the retrieved example pack offers a ready-made binary
// table codec for this shape, so this uses encoding/binary directly.
func (d *DFA) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, tableMagic)
	_ = binary.Write(&buf, binary.LittleEndian, tableVersion)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(d.Start))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(d.Rows)))

	for i := range d.Rows {
		r := &d.Rows[i]
		_ = binary.Write(&buf, binary.LittleEndian, uint32(len(r.Trans)))
		_ = binary.Write(&buf, binary.LittleEndian, int32(r.AcceptID))
		_ = binary.Write(&buf, binary.LittleEndian, uint8(r.Flags))
		_ = binary.Write(&buf, binary.LittleEndian, r.RefMask)
		_ = binary.Write(&buf, binary.LittleEndian, uint32(r.Default))
		for _, t := range r.Trans {
			_ = binary.Write(&buf, binary.LittleEndian, uint32(t.Lo))
			_ = binary.Write(&buf, binary.LittleEndian, uint32(t.Hi))
			_ = binary.Write(&buf, binary.LittleEndian, uint32(t.Target))
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a table produced by MarshalBinary, replacing d's
// contents.
func (d *DFA) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	var magic uint32
	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return err
	}
	if magic != tableMagic {
		return fmt.Errorf("dfa: bad table magic %#x", magic)
	}
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return err
	}
	if version != tableVersion {
		return fmt.Errorf("dfa: unsupported table version %d", version)
	}

	var start, n uint32
	if err := binary.Read(r, binary.LittleEndian, &start); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return err
	}

	rows := make([]Row, n)
	for i := range rows {
		var tlen uint32
		var acceptID int32
		var flags uint8
		var refMask, def uint32
		if err := binary.Read(r, binary.LittleEndian, &tlen); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &acceptID); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &flags); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &refMask); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &def); err != nil {
			return err
		}
		row := Row{AcceptID: int(acceptID), Flags: matchflagOf(flags), RefMask: refMask, Default: StateID(def)}
		row.Trans = make([]Trans, tlen)
		for j := range row.Trans {
			var lo, hi, target uint32
			if err := binary.Read(r, binary.LittleEndian, &lo); err != nil {
				return err
			}
			if err := binary.Read(r, binary.LittleEndian, &hi); err != nil {
				return err
			}
			if err := binary.Read(r, binary.LittleEndian, &target); err != nil {
				return err
			}
			row.Trans[j] = Trans{Lo: rune(lo), Hi: rune(hi), Target: StateID(target)}
		}
		rows[i] = row
	}

	d.Start = StateID(start)
	d.Rows = rows
	return nil
}
