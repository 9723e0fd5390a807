package main

import (
	"fmt"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/manifoldco/promptui"
)

var FuncMap = template.FuncMap{
	"humanBytes": func(n uint64) string {
		return humanize.Bytes(n)
	},
	"bytesToString": func(b []byte) string { return string(b) },
	"parseDate": func(i uint64) string {
		return time.Unix(0, int64(i)).Format(time.StampMilli)
	},
	"timeToDuration": func(i uint64) string {
		return humanize.Time(time.Unix(0, int64(i)))
	},
}

func ParseTemplate(body string) *template.Template {
	tpl, err := template.New("").Funcs(promptui.FuncMap).Funcs(FuncMap).Parse(fmt.Sprintf("%s\n", body))
	if err != nil {
		panic(err)
	}
	return tpl
}
