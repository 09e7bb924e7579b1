/*
Package savefile reads and writes the save data container: a short header
followed by either the raw payload or an lzsave stream.

Layout:

	byte 0      marker: 0xA4 compressed, 0x24 raw
	byte 1      vestigial, preserved as is
	bytes 2..4  reserved, normally zero, preserved as is
	name        ASCII/UTF-8 bytes terminated by NUL
	size        compressed only: original payload size, uint32 little-endian
	terminator  1 byte, preserved as is
	payload     rest of the file

Converting a file flips the marker, adds or drops the size field, and
re-encodes the payload; every other header byte is kept.

	f, err := savefile.Open("slot1.sav")
	if err != nil {
		return err
	}
	if err := f.Toggle(); err != nil {
		return err
	}
	return f.Save("slot1.out")
*/
package savefile
