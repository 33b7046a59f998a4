package main

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-argbind"
)

// sampleConfig is the target the demo commands bind onto.
type sampleConfig struct {
	Count   int     `argbind:"option=count|c,required"`
	Verbose bool    `argbind:"option=verbose|v,default=false"`
	Ratio   float64 `argbind:"option=ratio,default=1.0"`
	Mode    rune    `argbind:"option=mode,char,default=a"`
	Name    string  `argbind:"value=0,required"`
	Level   int16   `argbind:"value=1,default=0"`
}

// formatValue renders the current value of a slot for display.
func formatValue(p *argbind.Property) string {
	v := p.Value()
	switch p.Spec().Type {
	case argbind.TypeChar:
		if r, ok := v.(int32); ok {
			return strconv.QuoteRune(r)
		}
	case argbind.TypeString:
		if s, ok := v.(string); ok {
			return strconv.Quote(s)
		}
	}

	return fmt.Sprint(v)
}
