package ctor

func ignoredAll() {
	//implicitctor:ignore
	_ = WidgetC1()
}

func ignoredSameLine(w *Widget) {
	_ = CloneC1(w) //implicitctor:ignore copy
}

func ignoredWithReason() {
	//implicitctor:ignore default,parameterized - generated bindings
	_, _ = WidgetC1(), SizedC1(1)
}

func ignoredOtherKind() {
	//implicitctor:ignore default // want `unused implicitctor:ignore directive for kind\(s\): default`
	_ = SizedC1(4) // want `implicit constructor detected: ctor\.SizedC1 \(Parameterized Constructor\)`
}

func unknownKind() {
	//implicitctor:ignore bogus // want `unused implicitctor:ignore directive for kind\(s\): bogus`
	_ = WidgetC1() // want `implicit constructor detected: ctor\.WidgetC1 \(Default Constructor\)`
}

func nothingToIgnore() {
	//implicitctor:ignore // want `unused implicitctor:ignore directive`
	plain()
}

func partiallyUsed() {
	//implicitctor:ignore default,copy // want `unused implicitctor:ignore directive for kind\(s\): copy`
	_ = WidgetC1()
}
