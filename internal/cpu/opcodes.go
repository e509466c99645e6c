package cpu

type instruction struct {
	name       string
	mode       addrMode
	fn         func(*CPU)
	cycles     uint8
	unofficial bool
}

// instructions maps an opcode byte to its decoding. Base cycle counts do not
// include the page crossing and branch penalties, the operations add those.
// Opcodes without an entry (KIL and the unstable unofficial ones) stop the CPU.
var instructions = [0x100]instruction{
	0x00: {name: "BRK", mode: addrModeIMP, fn: (*CPU).brk, cycles: 7},
	0x01: {name: "ORA", mode: addrModeINDX, fn: (*CPU).ora, cycles: 6},
	0x03: {name: "SLO", mode: addrModeINDX, fn: (*CPU).slo, cycles: 8, unofficial: true},
	0x04: {name: "NOP", mode: addrModeZP, fn: (*CPU).nop, cycles: 3, unofficial: true},
	0x05: {name: "ORA", mode: addrModeZP, fn: (*CPU).ora, cycles: 3},
	0x06: {name: "ASL", mode: addrModeZP, fn: (*CPU).asl, cycles: 5},
	0x07: {name: "SLO", mode: addrModeZP, fn: (*CPU).slo, cycles: 5, unofficial: true},
	0x08: {name: "PHP", mode: addrModeIMP, fn: (*CPU).php, cycles: 3},
	0x09: {name: "ORA", mode: addrModeIMM, fn: (*CPU).ora, cycles: 2},
	0x0a: {name: "ASL", mode: addrModeACC, fn: (*CPU).asl, cycles: 2},
	0x0b: {name: "ANC", mode: addrModeIMM, fn: (*CPU).anc, cycles: 2, unofficial: true},
	0x0c: {name: "NOP", mode: addrModeABS, fn: (*CPU).nop, cycles: 4, unofficial: true},
	0x0d: {name: "ORA", mode: addrModeABS, fn: (*CPU).ora, cycles: 4},
	0x0e: {name: "ASL", mode: addrModeABS, fn: (*CPU).asl, cycles: 6},
	0x0f: {name: "SLO", mode: addrModeABS, fn: (*CPU).slo, cycles: 6, unofficial: true},
	0x10: {name: "BPL", mode: addrModeREL, fn: (*CPU).bpl, cycles: 2},
	0x11: {name: "ORA", mode: addrModeINDY, fn: (*CPU).ora, cycles: 5},
	0x13: {name: "SLO", mode: addrModeINDY, fn: (*CPU).slo, cycles: 8, unofficial: true},
	0x14: {name: "NOP", mode: addrModeZPX, fn: (*CPU).nop, cycles: 4, unofficial: true},
	0x15: {name: "ORA", mode: addrModeZPX, fn: (*CPU).ora, cycles: 4},
	0x16: {name: "ASL", mode: addrModeZPX, fn: (*CPU).asl, cycles: 6},
	0x17: {name: "SLO", mode: addrModeZPX, fn: (*CPU).slo, cycles: 6, unofficial: true},
	0x18: {name: "CLC", mode: addrModeIMP, fn: (*CPU).clc, cycles: 2},
	0x19: {name: "ORA", mode: addrModeABSY, fn: (*CPU).ora, cycles: 4},
	0x1a: {name: "NOP", mode: addrModeIMP, fn: (*CPU).nop, cycles: 2, unofficial: true},
	0x1b: {name: "SLO", mode: addrModeABSY, fn: (*CPU).slo, cycles: 7, unofficial: true},
	0x1c: {name: "NOP", mode: addrModeABSX, fn: (*CPU).nop, cycles: 4, unofficial: true},
	0x1d: {name: "ORA", mode: addrModeABSX, fn: (*CPU).ora, cycles: 4},
	0x1e: {name: "ASL", mode: addrModeABSX, fn: (*CPU).asl, cycles: 7},
	0x1f: {name: "SLO", mode: addrModeABSX, fn: (*CPU).slo, cycles: 7, unofficial: true},
	0x20: {name: "JSR", mode: addrModeABS, fn: (*CPU).jsr, cycles: 6},
	0x21: {name: "AND", mode: addrModeINDX, fn: (*CPU).and, cycles: 6},
	0x23: {name: "RLA", mode: addrModeINDX, fn: (*CPU).rla, cycles: 8, unofficial: true},
	0x24: {name: "BIT", mode: addrModeZP, fn: (*CPU).bit, cycles: 3},
	0x25: {name: "AND", mode: addrModeZP, fn: (*CPU).and, cycles: 3},
	0x26: {name: "ROL", mode: addrModeZP, fn: (*CPU).rol, cycles: 5},
	0x27: {name: "RLA", mode: addrModeZP, fn: (*CPU).rla, cycles: 5, unofficial: true},
	0x28: {name: "PLP", mode: addrModeIMP, fn: (*CPU).plp, cycles: 4},
	0x29: {name: "AND", mode: addrModeIMM, fn: (*CPU).and, cycles: 2},
	0x2a: {name: "ROL", mode: addrModeACC, fn: (*CPU).rol, cycles: 2},
	0x2b: {name: "ANC", mode: addrModeIMM, fn: (*CPU).anc, cycles: 2, unofficial: true},
	0x2c: {name: "BIT", mode: addrModeABS, fn: (*CPU).bit, cycles: 4},
	0x2d: {name: "AND", mode: addrModeABS, fn: (*CPU).and, cycles: 4},
	0x2e: {name: "ROL", mode: addrModeABS, fn: (*CPU).rol, cycles: 6},
	0x2f: {name: "RLA", mode: addrModeABS, fn: (*CPU).rla, cycles: 6, unofficial: true},
	0x30: {name: "BMI", mode: addrModeREL, fn: (*CPU).bmi, cycles: 2},
	0x31: {name: "AND", mode: addrModeINDY, fn: (*CPU).and, cycles: 5},
	0x33: {name: "RLA", mode: addrModeINDY, fn: (*CPU).rla, cycles: 8, unofficial: true},
	0x34: {name: "NOP", mode: addrModeZPX, fn: (*CPU).nop, cycles: 4, unofficial: true},
	0x35: {name: "AND", mode: addrModeZPX, fn: (*CPU).and, cycles: 4},
	0x36: {name: "ROL", mode: addrModeZPX, fn: (*CPU).rol, cycles: 6},
	0x37: {name: "RLA", mode: addrModeZPX, fn: (*CPU).rla, cycles: 6, unofficial: true},
	0x38: {name: "SEC", mode: addrModeIMP, fn: (*CPU).sec, cycles: 2},
	0x39: {name: "AND", mode: addrModeABSY, fn: (*CPU).and, cycles: 4},
	0x3a: {name: "NOP", mode: addrModeIMP, fn: (*CPU).nop, cycles: 2, unofficial: true},
	0x3b: {name: "RLA", mode: addrModeABSY, fn: (*CPU).rla, cycles: 7, unofficial: true},
	0x3c: {name: "NOP", mode: addrModeABSX, fn: (*CPU).nop, cycles: 4, unofficial: true},
	0x3d: {name: "AND", mode: addrModeABSX, fn: (*CPU).and, cycles: 4},
	0x3e: {name: "ROL", mode: addrModeABSX, fn: (*CPU).rol, cycles: 7},
	0x3f: {name: "RLA", mode: addrModeABSX, fn: (*CPU).rla, cycles: 7, unofficial: true},
	0x40: {name: "RTI", mode: addrModeIMP, fn: (*CPU).rti, cycles: 6},
	0x41: {name: "EOR", mode: addrModeINDX, fn: (*CPU).eor, cycles: 6},
	0x43: {name: "SRE", mode: addrModeINDX, fn: (*CPU).sre, cycles: 8, unofficial: true},
	0x44: {name: "NOP", mode: addrModeZP, fn: (*CPU).nop, cycles: 3, unofficial: true},
	0x45: {name: "EOR", mode: addrModeZP, fn: (*CPU).eor, cycles: 3},
	0x46: {name: "LSR", mode: addrModeZP, fn: (*CPU).lsr, cycles: 5},
	0x47: {name: "SRE", mode: addrModeZP, fn: (*CPU).sre, cycles: 5, unofficial: true},
	0x48: {name: "PHA", mode: addrModeIMP, fn: (*CPU).pha, cycles: 3},
	0x49: {name: "EOR", mode: addrModeIMM, fn: (*CPU).eor, cycles: 2},
	0x4a: {name: "LSR", mode: addrModeACC, fn: (*CPU).lsr, cycles: 2},
	0x4b: {name: "ALR", mode: addrModeIMM, fn: (*CPU).alr, cycles: 2, unofficial: true},
	0x4c: {name: "JMP", mode: addrModeABS, fn: (*CPU).jmp, cycles: 3},
	0x4d: {name: "EOR", mode: addrModeABS, fn: (*CPU).eor, cycles: 4},
	0x4e: {name: "LSR", mode: addrModeABS, fn: (*CPU).lsr, cycles: 6},
	0x4f: {name: "SRE", mode: addrModeABS, fn: (*CPU).sre, cycles: 6, unofficial: true},
	0x50: {name: "BVC", mode: addrModeREL, fn: (*CPU).bvc, cycles: 2},
	0x51: {name: "EOR", mode: addrModeINDY, fn: (*CPU).eor, cycles: 5},
	0x53: {name: "SRE", mode: addrModeINDY, fn: (*CPU).sre, cycles: 8, unofficial: true},
	0x54: {name: "NOP", mode: addrModeZPX, fn: (*CPU).nop, cycles: 4, unofficial: true},
	0x55: {name: "EOR", mode: addrModeZPX, fn: (*CPU).eor, cycles: 4},
	0x56: {name: "LSR", mode: addrModeZPX, fn: (*CPU).lsr, cycles: 6},
	0x57: {name: "SRE", mode: addrModeZPX, fn: (*CPU).sre, cycles: 6, unofficial: true},
	0x58: {name: "CLI", mode: addrModeIMP, fn: (*CPU).cli, cycles: 2},
	0x59: {name: "EOR", mode: addrModeABSY, fn: (*CPU).eor, cycles: 4},
	0x5a: {name: "NOP", mode: addrModeIMP, fn: (*CPU).nop, cycles: 2, unofficial: true},
	0x5b: {name: "SRE", mode: addrModeABSY, fn: (*CPU).sre, cycles: 7, unofficial: true},
	0x5c: {name: "NOP", mode: addrModeABSX, fn: (*CPU).nop, cycles: 4, unofficial: true},
	0x5d: {name: "EOR", mode: addrModeABSX, fn: (*CPU).eor, cycles: 4},
	0x5e: {name: "LSR", mode: addrModeABSX, fn: (*CPU).lsr, cycles: 7},
	0x5f: {name: "SRE", mode: addrModeABSX, fn: (*CPU).sre, cycles: 7, unofficial: true},
	0x60: {name: "RTS", mode: addrModeIMP, fn: (*CPU).rts, cycles: 6},
	0x61: {name: "ADC", mode: addrModeINDX, fn: (*CPU).adc, cycles: 6},
	0x63: {name: "RRA", mode: addrModeINDX, fn: (*CPU).rra, cycles: 8, unofficial: true},
	0x64: {name: "NOP", mode: addrModeZP, fn: (*CPU).nop, cycles: 3, unofficial: true},
	0x65: {name: "ADC", mode: addrModeZP, fn: (*CPU).adc, cycles: 3},
	0x66: {name: "ROR", mode: addrModeZP, fn: (*CPU).ror, cycles: 5},
	0x67: {name: "RRA", mode: addrModeZP, fn: (*CPU).rra, cycles: 5, unofficial: true},
	0x68: {name: "PLA", mode: addrModeIMP, fn: (*CPU).pla, cycles: 4},
	0x69: {name: "ADC", mode: addrModeIMM, fn: (*CPU).adc, cycles: 2},
	0x6a: {name: "ROR", mode: addrModeACC, fn: (*CPU).ror, cycles: 2},
	0x6c: {name: "JMP", mode: addrModeIND, fn: (*CPU).jmp, cycles: 5},
	0x6d: {name: "ADC", mode: addrModeABS, fn: (*CPU).adc, cycles: 4},
	0x6e: {name: "ROR", mode: addrModeABS, fn: (*CPU).ror, cycles: 6},
	0x6f: {name: "RRA", mode: addrModeABS, fn: (*CPU).rra, cycles: 6, unofficial: true},
	0x70: {name: "BVS", mode: addrModeREL, fn: (*CPU).bvs, cycles: 2},
	0x71: {name: "ADC", mode: addrModeINDY, fn: (*CPU).adc, cycles: 5},
	0x73: {name: "RRA", mode: addrModeINDY, fn: (*CPU).rra, cycles: 8, unofficial: true},
	0x74: {name: "NOP", mode: addrModeZPX, fn: (*CPU).nop, cycles: 4, unofficial: true},
	0x75: {name: "ADC", mode: addrModeZPX, fn: (*CPU).adc, cycles: 4},
	0x76: {name: "ROR", mode: addrModeZPX, fn: (*CPU).ror, cycles: 6},
	0x77: {name: "RRA", mode: addrModeZPX, fn: (*CPU).rra, cycles: 6, unofficial: true},
	0x78: {name: "SEI", mode: addrModeIMP, fn: (*CPU).sei, cycles: 2},
	0x79: {name: "ADC", mode: addrModeABSY, fn: (*CPU).adc, cycles: 4},
	0x7a: {name: "NOP", mode: addrModeIMP, fn: (*CPU).nop, cycles: 2, unofficial: true},
	0x7b: {name: "RRA", mode: addrModeABSY, fn: (*CPU).rra, cycles: 7, unofficial: true},
	0x7c: {name: "NOP", mode: addrModeABSX, fn: (*CPU).nop, cycles: 4, unofficial: true},
	0x7d: {name: "ADC", mode: addrModeABSX, fn: (*CPU).adc, cycles: 4},
	0x7e: {name: "ROR", mode: addrModeABSX, fn: (*CPU).ror, cycles: 7},
	0x7f: {name: "RRA", mode: addrModeABSX, fn: (*CPU).rra, cycles: 7, unofficial: true},
	0x80: {name: "NOP", mode: addrModeIMM, fn: (*CPU).nop, cycles: 2, unofficial: true},
	0x81: {name: "STA", mode: addrModeINDX, fn: (*CPU).sta, cycles: 6},
	0x82: {name: "NOP", mode: addrModeIMM, fn: (*CPU).nop, cycles: 2, unofficial: true},
	0x83: {name: "SAX", mode: addrModeINDX, fn: (*CPU).sax, cycles: 6, unofficial: true},
	0x84: {name: "STY", mode: addrModeZP, fn: (*CPU).sty, cycles: 3},
	0x85: {name: "STA", mode: addrModeZP, fn: (*CPU).sta, cycles: 3},
	0x86: {name: "STX", mode: addrModeZP, fn: (*CPU).stx, cycles: 3},
	0x87: {name: "SAX", mode: addrModeZP, fn: (*CPU).sax, cycles: 3, unofficial: true},
	0x88: {name: "DEY", mode: addrModeIMP, fn: (*CPU).dey, cycles: 2},
	0x89: {name: "NOP", mode: addrModeIMM, fn: (*CPU).nop, cycles: 2, unofficial: true},
	0x8a: {name: "TXA", mode: addrModeIMP, fn: (*CPU).txa, cycles: 2},
	0x8c: {name: "STY", mode: addrModeABS, fn: (*CPU).sty, cycles: 4},
	0x8d: {name: "STA", mode: addrModeABS, fn: (*CPU).sta, cycles: 4},
	0x8e: {name: "STX", mode: addrModeABS, fn: (*CPU).stx, cycles: 4},
	0x8f: {name: "SAX", mode: addrModeABS, fn: (*CPU).sax, cycles: 4, unofficial: true},
	0x90: {name: "BCC", mode: addrModeREL, fn: (*CPU).bcc, cycles: 2},
	0x91: {name: "STA", mode: addrModeINDY, fn: (*CPU).sta, cycles: 6},
	0x94: {name: "STY", mode: addrModeZPX, fn: (*CPU).sty, cycles: 4},
	0x95: {name: "STA", mode: addrModeZPX, fn: (*CPU).sta, cycles: 4},
	0x96: {name: "STX", mode: addrModeZPY, fn: (*CPU).stx, cycles: 4},
	0x97: {name: "SAX", mode: addrModeZPY, fn: (*CPU).sax, cycles: 4, unofficial: true},
	0x98: {name: "TYA", mode: addrModeIMP, fn: (*CPU).tya, cycles: 2},
	0x99: {name: "STA", mode: addrModeABSY, fn: (*CPU).sta, cycles: 5},
	0x9a: {name: "TXS", mode: addrModeIMP, fn: (*CPU).txs, cycles: 2},
	0x9d: {name: "STA", mode: addrModeABSX, fn: (*CPU).sta, cycles: 5},
	0xa0: {name: "LDY", mode: addrModeIMM, fn: (*CPU).ldy, cycles: 2},
	0xa1: {name: "LDA", mode: addrModeINDX, fn: (*CPU).lda, cycles: 6},
	0xa2: {name: "LDX", mode: addrModeIMM, fn: (*CPU).ldx, cycles: 2},
	0xa3: {name: "LAX", mode: addrModeINDX, fn: (*CPU).lax, cycles: 6, unofficial: true},
	0xa4: {name: "LDY", mode: addrModeZP, fn: (*CPU).ldy, cycles: 3},
	0xa5: {name: "LDA", mode: addrModeZP, fn: (*CPU).lda, cycles: 3},
	0xa6: {name: "LDX", mode: addrModeZP, fn: (*CPU).ldx, cycles: 3},
	0xa7: {name: "LAX", mode: addrModeZP, fn: (*CPU).lax, cycles: 3, unofficial: true},
	0xa8: {name: "TAY", mode: addrModeIMP, fn: (*CPU).tay, cycles: 2},
	0xa9: {name: "LDA", mode: addrModeIMM, fn: (*CPU).lda, cycles: 2},
	0xaa: {name: "TAX", mode: addrModeIMP, fn: (*CPU).tax, cycles: 2},
	0xac: {name: "LDY", mode: addrModeABS, fn: (*CPU).ldy, cycles: 4},
	0xad: {name: "LDA", mode: addrModeABS, fn: (*CPU).lda, cycles: 4},
	0xae: {name: "LDX", mode: addrModeABS, fn: (*CPU).ldx, cycles: 4},
	0xaf: {name: "LAX", mode: addrModeABS, fn: (*CPU).lax, cycles: 4, unofficial: true},
	0xb0: {name: "BCS", mode: addrModeREL, fn: (*CPU).bcs, cycles: 2},
	0xb1: {name: "LDA", mode: addrModeINDY, fn: (*CPU).lda, cycles: 5},
	0xb3: {name: "LAX", mode: addrModeINDY, fn: (*CPU).lax, cycles: 5, unofficial: true},
	0xb4: {name: "LDY", mode: addrModeZPX, fn: (*CPU).ldy, cycles: 4},
	0xb5: {name: "LDA", mode: addrModeZPX, fn: (*CPU).lda, cycles: 4},
	0xb6: {name: "LDX", mode: addrModeZPY, fn: (*CPU).ldx, cycles: 4},
	0xb7: {name: "LAX", mode: addrModeZPY, fn: (*CPU).lax, cycles: 4, unofficial: true},
	0xb8: {name: "CLV", mode: addrModeIMP, fn: (*CPU).clv, cycles: 2},
	0xb9: {name: "LDA", mode: addrModeABSY, fn: (*CPU).lda, cycles: 4},
	0xba: {name: "TSX", mode: addrModeIMP, fn: (*CPU).tsx, cycles: 2},
	0xbb: {name: "LAS", mode: addrModeABSY, fn: (*CPU).las, cycles: 4, unofficial: true},
	0xbc: {name: "LDY", mode: addrModeABSX, fn: (*CPU).ldy, cycles: 4},
	0xbd: {name: "LDA", mode: addrModeABSX, fn: (*CPU).lda, cycles: 4},
	0xbe: {name: "LDX", mode: addrModeABSY, fn: (*CPU).ldx, cycles: 4},
	0xbf: {name: "LAX", mode: addrModeABSY, fn: (*CPU).lax, cycles: 4, unofficial: true},
	0xc0: {name: "CPY", mode: addrModeIMM, fn: (*CPU).cpy, cycles: 2},
	0xc1: {name: "CMP", mode: addrModeINDX, fn: (*CPU).cmp, cycles: 6},
	0xc2: {name: "NOP", mode: addrModeIMM, fn: (*CPU).nop, cycles: 2, unofficial: true},
	0xc3: {name: "DCP", mode: addrModeINDX, fn: (*CPU).dcp, cycles: 8, unofficial: true},
	0xc4: {name: "CPY", mode: addrModeZP, fn: (*CPU).cpy, cycles: 3},
	0xc5: {name: "CMP", mode: addrModeZP, fn: (*CPU).cmp, cycles: 3},
	0xc6: {name: "DEC", mode: addrModeZP, fn: (*CPU).dec, cycles: 5},
	0xc7: {name: "DCP", mode: addrModeZP, fn: (*CPU).dcp, cycles: 5, unofficial: true},
	0xc8: {name: "INY", mode: addrModeIMP, fn: (*CPU).iny, cycles: 2},
	0xc9: {name: "CMP", mode: addrModeIMM, fn: (*CPU).cmp, cycles: 2},
	0xca: {name: "DEX", mode: addrModeIMP, fn: (*CPU).dex, cycles: 2},
	0xcc: {name: "CPY", mode: addrModeABS, fn: (*CPU).cpy, cycles: 4},
	0xcd: {name: "CMP", mode: addrModeABS, fn: (*CPU).cmp, cycles: 4},
	0xce: {name: "DEC", mode: addrModeABS, fn: (*CPU).dec, cycles: 6},
	0xcf: {name: "DCP", mode: addrModeABS, fn: (*CPU).dcp, cycles: 6, unofficial: true},
	0xd0: {name: "BNE", mode: addrModeREL, fn: (*CPU).bne, cycles: 2},
	0xd1: {name: "CMP", mode: addrModeINDY, fn: (*CPU).cmp, cycles: 5},
	0xd3: {name: "DCP", mode: addrModeINDY, fn: (*CPU).dcp, cycles: 8, unofficial: true},
	0xd4: {name: "NOP", mode: addrModeZPX, fn: (*CPU).nop, cycles: 4, unofficial: true},
	0xd5: {name: "CMP", mode: addrModeZPX, fn: (*CPU).cmp, cycles: 4},
	0xd6: {name: "DEC", mode: addrModeZPX, fn: (*CPU).dec, cycles: 6},
	0xd7: {name: "DCP", mode: addrModeZPX, fn: (*CPU).dcp, cycles: 6, unofficial: true},
	0xd8: {name: "CLD", mode: addrModeIMP, fn: (*CPU).cld, cycles: 2},
	0xd9: {name: "CMP", mode: addrModeABSY, fn: (*CPU).cmp, cycles: 4},
	0xda: {name: "NOP", mode: addrModeIMP, fn: (*CPU).nop, cycles: 2, unofficial: true},
	0xdb: {name: "DCP", mode: addrModeABSY, fn: (*CPU).dcp, cycles: 7, unofficial: true},
	0xdc: {name: "NOP", mode: addrModeABSX, fn: (*CPU).nop, cycles: 4, unofficial: true},
	0xdd: {name: "CMP", mode: addrModeABSX, fn: (*CPU).cmp, cycles: 4},
	0xde: {name: "DEC", mode: addrModeABSX, fn: (*CPU).dec, cycles: 7},
	0xdf: {name: "DCP", mode: addrModeABSX, fn: (*CPU).dcp, cycles: 7, unofficial: true},
	0xe0: {name: "CPX", mode: addrModeIMM, fn: (*CPU).cpx, cycles: 2},
	0xe1: {name: "SBC", mode: addrModeINDX, fn: (*CPU).sbc, cycles: 6},
	0xe2: {name: "NOP", mode: addrModeIMM, fn: (*CPU).nop, cycles: 2, unofficial: true},
	0xe3: {name: "ISC", mode: addrModeINDX, fn: (*CPU).isc, cycles: 8, unofficial: true},
	0xe4: {name: "CPX", mode: addrModeZP, fn: (*CPU).cpx, cycles: 3},
	0xe5: {name: "SBC", mode: addrModeZP, fn: (*CPU).sbc, cycles: 3},
	0xe6: {name: "INC", mode: addrModeZP, fn: (*CPU).inc, cycles: 5},
	0xe7: {name: "ISC", mode: addrModeZP, fn: (*CPU).isc, cycles: 5, unofficial: true},
	0xe8: {name: "INX", mode: addrModeIMP, fn: (*CPU).inx, cycles: 2},
	0xe9: {name: "SBC", mode: addrModeIMM, fn: (*CPU).sbc, cycles: 2},
	0xea: {name: "NOP", mode: addrModeIMP, fn: (*CPU).nop, cycles: 2},
	0xeb: {name: "SBC", mode: addrModeIMM, fn: (*CPU).sbc, cycles: 2, unofficial: true},
	0xec: {name: "CPX", mode: addrModeABS, fn: (*CPU).cpx, cycles: 4},
	0xed: {name: "SBC", mode: addrModeABS, fn: (*CPU).sbc, cycles: 4},
	0xee: {name: "INC", mode: addrModeABS, fn: (*CPU).inc, cycles: 6},
	0xef: {name: "ISC", mode: addrModeABS, fn: (*CPU).isc, cycles: 6, unofficial: true},
	0xf0: {name: "BEQ", mode: addrModeREL, fn: (*CPU).beq, cycles: 2},
	0xf1: {name: "SBC", mode: addrModeINDY, fn: (*CPU).sbc, cycles: 5},
	0xf3: {name: "ISC", mode: addrModeINDY, fn: (*CPU).isc, cycles: 8, unofficial: true},
	0xf4: {name: "NOP", mode: addrModeZPX, fn: (*CPU).nop, cycles: 4, unofficial: true},
	0xf5: {name: "SBC", mode: addrModeZPX, fn: (*CPU).sbc, cycles: 4},
	0xf6: {name: "INC", mode: addrModeZPX, fn: (*CPU).inc, cycles: 6},
	0xf7: {name: "ISC", mode: addrModeZPX, fn: (*CPU).isc, cycles: 6, unofficial: true},
	0xf8: {name: "SED", mode: addrModeIMP, fn: (*CPU).sed, cycles: 2},
	0xf9: {name: "SBC", mode: addrModeABSY, fn: (*CPU).sbc, cycles: 4},
	0xfa: {name: "NOP", mode: addrModeIMP, fn: (*CPU).nop, cycles: 2, unofficial: true},
	0xfb: {name: "ISC", mode: addrModeABSY, fn: (*CPU).isc, cycles: 7, unofficial: true},
	0xfc: {name: "NOP", mode: addrModeABSX, fn: (*CPU).nop, cycles: 4, unofficial: true},
	0xfd: {name: "SBC", mode: addrModeABSX, fn: (*CPU).sbc, cycles: 4},
	0xfe: {name: "INC", mode: addrModeABSX, fn: (*CPU).inc, cycles: 7},
	0xff: {name: "ISC", mode: addrModeABSX, fn: (*CPU).isc, cycles: 7, unofficial: true},
}

// OpcodeIsSupported reports whether opcode has a table entry.
func OpcodeIsSupported(opcode uint8, unofficial bool) bool {
	instr := instructions[opcode]
	return instr.fn != nil && (unofficial || !instr.unofficial)
}
