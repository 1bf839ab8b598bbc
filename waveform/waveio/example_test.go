package waveio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-echo/dsp/series"
	"github.com/cwbudde/algo-echo/waveform/waveio"
)

func ExampleEncodeCSV() {
	plus := series.New([]float64{1, 0, -1}, 0.25, 2)
	cross := series.New([]float64{0, 1, 0}, 0.25, 2)

	if err := waveio.EncodeCSV(os.Stdout, plus, cross); err != nil {
		fmt.Println(err)
	}
	// Output:
	// time,plus,cross
	// 2,1,0
	// 2.25,0,1
	// 2.5,-1,0
}

func ExampleDecodeCSV() {
	in := "time,plus,cross\n0,0.5,0\n0.001,0,0.5\n"

	plus, cross, err := waveio.DecodeCSV(strings.NewReader(in))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(plus.Len(), plus.DeltaT, cross.Data)
	// Output: 2 0.001 [0 0.5]
}
