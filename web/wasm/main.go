//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/d-giles/phase-folder/internal/webdemo"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	engine = webdemo.NewEngine()

	api := js.Global().Get("Object").New()

	api.Set("loadCSV", export(func(args []js.Value) any {
		if len(args) < 1 {
			return "loadCSV: missing csv argument"
		}
		if err := engine.LoadCSV([]byte(args[0].String())); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("label", export(func([]js.Value) any {
		return engine.Label()
	}))

	api.Set("setPeriod", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		if err := engine.SetPeriod(args[0].Float()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setEpoch", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		engine.SetEpoch(args[0].Float())
		return js.Null()
	}))

	api.Set("setCentered", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		engine.SetCentered(args[0].Bool())
		return js.Null()
	}))

	api.Set("scalePeriod", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		if err := engine.ScalePeriod(args[0].Float()); err != nil {
			return err.Error()
		}
		return engine.Period()
	}))

	api.Set("period", export(func([]js.Value) any {
		return engine.Period()
	}))

	api.Set("epoch", export(func([]js.Value) any {
		return engine.Epoch()
	}))

	api.Set("raw", export(func([]js.Value) any {
		times, flux, err := engine.Raw()
		if err != nil {
			return err.Error()
		}
		return seriesObject(times, flux)
	}))

	api.Set("folded", export(func([]js.Value) any {
		folded, err := engine.Folded()
		if err != nil {
			return err.Error()
		}
		return seriesObject(folded.Phase, folded.Flux)
	}))

	api.Set("profile", export(func(args []js.Value) any {
		bins := 100
		if len(args) > 0 {
			bins = args[0].Int()
		}
		profile, err := engine.Profile(bins)
		if err != nil {
			return err.Error()
		}
		return seriesObject(profile.Phase, profile.Flux)
	}))

	api.Set("bestPeriod", export(func(args []js.Value) any {
		method := "bls"
		if len(args) > 0 {
			method = args[0].String()
		}
		period, err := engine.BestPeriod(method)
		if err != nil {
			return err.Error()
		}
		return period
	}))

	api.Set("foldedCSV", export(func([]js.Value) any {
		data, err := engine.FoldedCSV()
		if err != nil {
			return err.Error()
		}
		return string(data)
	}))

	js.Global().Set("PhaseFolderDemo", api)
	select {}
}

// seriesObject packs paired x/y columns into a JS object with two
// Float64Array fields.
func seriesObject(x, y []float64) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("x", floatArray(x))
	obj.Set("y", floatArray(y))
	return obj
}

func floatArray(data []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}
	return arr
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
