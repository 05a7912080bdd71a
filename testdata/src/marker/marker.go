// Package marker is analyzed with -marker=New.
package marker

type Conn struct{ addr string }

func NewConn() *Conn { return &Conn{} }

func NewConnFrom(c *Conn) *Conn { return &Conn{addr: c.addr} }

func NewConnTo(addr string) *Conn { return &Conn{addr: addr} }

func ConnC1() *Conn { return &Conn{} }

func (c *Conn) Renew() {}

func dial() {
	c := NewConn()     // want `implicit constructor detected: marker\.NewConn \(Default Constructor\)`
	_ = NewConnFrom(c) // want `implicit constructor detected: marker\.NewConnFrom \(Copy Constructor\)`
	_ = NewConnTo("x") // want `implicit constructor detected: marker\.NewConnTo \(Parameterized Constructor\)`
	_ = ConnC1()
	c.Renew()
}
