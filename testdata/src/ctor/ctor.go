// Package ctor exercises constructor call detection.
package ctor

import "unsafe"

type Widget struct{ n int }

func WidgetC1() *Widget { return &Widget{} }

func CloneC1(w *Widget) *Widget { return &Widget{n: w.n} }

func RawC1(p unsafe.Pointer) {}

func SizedC1(n int) *Widget { return &Widget{n: n} }

func PairC1(a, b int) *Widget { return &Widget{n: a + b} }

func ListC1(ns ...int) {}

func CalcC1Sum(a, b int) int { return a + b }

func Calc1Sum(a int) int { return a }

func WidgetC2() *Widget { return &Widget{} }

func plain() {}

func (w *Widget) ResetC1() { w.n = 0 }

func (w Widget) ValueC1() int { return w.n }

func (w Widget) Size(n int) Widget { return Widget{n: n} }

var global = WidgetC1() // want `implicit constructor detected: ctor\.WidgetC1 \(Default Constructor\)`

var hook = func() *Widget {
	return WidgetC1() // want `implicit constructor detected: ctor\.WidgetC1 \(Default Constructor\)`
}

var nested = func() func() {
	return func() {
		_ = SizedC1(5) // want `implicit constructor detected: ctor\.SizedC1 \(Parameterized Constructor\)`
	}
}()

func defaultCtor() {
	_ = WidgetC1() // want `implicit constructor detected: ctor\.WidgetC1 \(Default Constructor\)`
}

func copyCtor(w *Widget) {
	_ = CloneC1(w)           // want `implicit constructor detected: ctor\.CloneC1 \(Copy Constructor\)`
	RawC1(unsafe.Pointer(w)) // want `implicit constructor detected: ctor\.RawC1 \(Copy Constructor\)`
}

func parameterizedCtor() {
	_ = SizedC1(1)   // want `implicit constructor detected: ctor\.SizedC1 \(Parameterized Constructor\)`
	_ = PairC1(1, 2) // want `implicit constructor detected: ctor\.PairC1 \(Parameterized Constructor\)`
	ListC1()         // want `implicit constructor detected: ctor\.ListC1 \(Parameterized Constructor\)`
}

// The marker is a plain substring, so this helper is reported too.
func falsePositive() int {
	return CalcC1Sum(1, 2) // want `implicit constructor detected: ctor\.CalcC1Sum \(Parameterized Constructor\)`
}

func notConstructors() {
	_ = Calc1Sum(1)
	_ = WidgetC2()
	_ = Widget{}.Size(1)
	plain()
}

func viaValue(f func() *Widget) *Widget {
	return f()
}

func methods(w *Widget) {
	w.ResetC1()            // want `implicit constructor detected: \(\*ctor\.Widget\)\.ResetC1 \(Copy Constructor\)`
	_ = Widget{}.ValueC1() // want `implicit constructor detected: \(ctor\.Widget\)\.ValueC1 \(Parameterized Constructor\)`
}

func sameLine() {
	_, _ = WidgetC1(), SizedC1(3) // want `ctor\.WidgetC1 \(Default Constructor\)` `ctor\.SizedC1 \(Parameterized Constructor\)`
}

func spawned() {
	go SizedC1(2)    // want `implicit constructor detected: ctor\.SizedC1 \(Parameterized Constructor\)`
	defer WidgetC1() // want `implicit constructor detected: ctor\.WidgetC1 \(Default Constructor\)`

	func() {
		_ = WidgetC1() // want `implicit constructor detected: ctor\.WidgetC1 \(Default Constructor\)`
	}()
}
