package cpu

// Named register accessors. Each is a thin alias over Registers[index] —
// writing through SetX and reading Registers[RegX] (or vice versa) always
// agree, by construction.

func (c *CPU) A() byte  { return c.Registers[RegA] }
func (c *CPU) B() byte  { return c.Registers[RegB] }
func (c *CPU) C() byte  { return c.Registers[RegC] }
func (c *CPU) D() byte  { return c.Registers[RegD] }
func (c *CPU) G() byte  { return c.Registers[RegG] }
func (c *CPU) H() byte  { return c.Registers[RegH] }
func (c *CPU) E() byte  { return c.Registers[RegE] }
func (c *CPU) SP() byte { return c.Registers[RegSP] }

func (c *CPU) SetA(v byte)  { c.Registers[RegA] = v }
func (c *CPU) SetB(v byte)  { c.Registers[RegB] = v }
func (c *CPU) SetC(v byte)  { c.Registers[RegC] = v }
func (c *CPU) SetD(v byte)  { c.Registers[RegD] = v }
func (c *CPU) SetG(v byte)  { c.Registers[RegG] = v }
func (c *CPU) SetH(v byte)  { c.Registers[RegH] = v }
func (c *CPU) SetE(v byte)  { c.Registers[RegE] = v }
func (c *CPU) SetSP(v byte) { c.Registers[RegSP] = v }
