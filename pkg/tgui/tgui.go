package tgui

import (
	tele "gopkg.in/telebot.v4"
)

// Inline accumulates rows for an inline keyboard.
type Inline struct {
	rm   *tele.ReplyMarkup
	rows []tele.Row
}

func NewInline() *Inline {
	return &Inline{rm: &tele.ReplyMarkup{}}
}

// Row adds one row of buttons and rebuilds the markup.
func (in *Inline) Row(btns ...tele.Btn) *Inline {
	in.rows = append(in.rows, in.rm.Row(btns...))
	in.rm.Inline(in.rows...)
	return in
}

func (in *Inline) Markup() *tele.ReplyMarkup { return in.rm }

// Btn makes a callback button. The data string goes out verbatim; build it
// with Data so the router can parse it back.
func Btn(text, data string) tele.Btn {
	return tele.Btn{Text: text, Data: data}
}

// Grid2 lays buttons out two per row.
func Grid2(buttons []tele.Btn) *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{}
	rm.Inline(rm.Split(2, buttons)...)
	return rm
}

// ConfirmInline puts a confirm and a cancel button on one row.
func ConfirmInline(yes, no tele.Btn) *Inline {
	return NewInline().Row(yes, no)
}
