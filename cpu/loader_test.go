package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoader(t *testing.T) {
	assert := assert.New(t)

	image := `# print8.ls8
10000010 # LDI R0,8
00000000
00001000

01000111 # PRN R0
00000000
00000001 # HLT
`

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader(image))
	assert.NoError(err)

	assert.Equal([]uint8{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, prog.Binary())

	if assert.Len(prog.Opcodes, 6) {
		assert.Equal(2, prog.Opcodes[0].LineNo)
		assert.Equal([]string{"LDI", "R0,8"}, prog.Opcodes[0].Words)
		assert.Nil(prog.Opcodes[1].Words)
		assert.Equal(6, prog.Opcodes[3].LineNo)
		assert.Equal(3, prog.Opcodes[3].Address)
	}
}

func TestLoader_Empty(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader("# nothing here\n\n   \n"))
	assert.NoError(err)
	assert.Empty(prog.Binary())
}

func TestLoader_Errors(t *testing.T) {
	table := [](struct {
		name   string
		image  string
		lineno int
		err    error
	}){
		{"decimal", "10000010\n2\n", 2, ErrParseNumber("2")},
		{"hex", "0x82\n", 1, ErrParseNumber("0x82")},
		{"wide", "00000001\n# ok\n100000000\n", 3, ErrParseNumber("100000000")},
		{"words", "0000 0001\n", 1, ErrParseNumber("0000 0001")},
		{"size", strings.Repeat("00000001\n", MEMORY_SIZE+1), MEMORY_SIZE + 1, ErrImageSize},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			ld := &Loader{}
			_, err := ld.Parse(strings.NewReader(entry.image))
			assert.ErrorIs(err, entry.err)

			var es *ErrSyntax
			if assert.ErrorAs(err, &es) {
				assert.Equal(entry.lineno, es.LineNo)
			}
		})
	}
}

func TestLoader_Full(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader(strings.Repeat("00000001\n", MEMORY_SIZE)))
	assert.NoError(err)
	assert.Len(prog.Binary(), MEMORY_SIZE)
}
