package util

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
)

//*******************************************
// binary buffer io
//*******************************************

// Little-endian buffer reader/writer used to store packed build outputs.

func NewBufferReader(data []byte) BufferReader {
	reader := bytes.NewReader(data)
	return BufferReader{
		reader: reader,
	}
}

type BufferReader struct {
	reader *bytes.Reader
}

func Read[T any](reader BufferReader) T {
	var value T
	binary.Read(reader.reader, binary.LittleEndian, &value)
	return value
}

func ReadArray[T any](reader BufferReader) Array[T] {
	var size int32
	binary.Read(reader.reader, binary.LittleEndian, &size)
	value := NewArray[T](int(size))
	binary.Read(reader.reader, binary.LittleEndian, &value)
	return value
}

func ReadString(reader BufferReader) string {
	var size int32
	binary.Read(reader.reader, binary.LittleEndian, &size)
	buffer := make([]byte, size)
	reader.reader.Read(buffer)
	return string(buffer)
}

func NewBufferWriter() BufferWriter {
	buffer := bytes.Buffer{}
	return BufferWriter{
		buffer: &buffer,
	}
}

type BufferWriter struct {
	buffer *bytes.Buffer
}

func (self *BufferWriter) Bytes() []byte {
	return self.buffer.Bytes()
}

func Write[T any](writer BufferWriter, value T) {
	binary.Write(writer.buffer, binary.LittleEndian, value)
}
func WriteArray[T any](writer BufferWriter, value Array[T]) {
	binary.Write(writer.buffer, binary.LittleEndian, int32(value.Length()))
	binary.Write(writer.buffer, binary.LittleEndian, value)
}
func WriteString(writer BufferWriter, value string) {
	binary.Write(writer.buffer, binary.LittleEndian, int32(len(value)))
	writer.buffer.WriteString(value)
}

//*******************************************
// binary file io
//*******************************************

func WriteBufferToFile(writer BufferWriter, file string) error {
	out, err := os.Create(file)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = out.Write(writer.Bytes())
	return err
}

func ReadBufferFromFile(file string) (BufferReader, error) {
	_, err := os.Stat(file)
	if errors.Is(err, os.ErrNotExist) {
		return BufferReader{}, errors.New("file not found: " + file)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return BufferReader{}, err
	}
	return NewBufferReader(data), nil
}

func WriteArrayToFile[T any](value Array[T], file string) error {
	writer := NewBufferWriter()
	WriteArray[T](writer, value)
	return WriteBufferToFile(writer, file)
}

func ReadArrayFromFile[T any](file string) (Array[T], error) {
	reader, err := ReadBufferFromFile(file)
	if err != nil {
		return nil, err
	}
	return ReadArray[T](reader), nil
}
