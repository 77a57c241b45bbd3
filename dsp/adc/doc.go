// Package adc reads ADC sample logs and removes their DC offset.
//
// A sample log is whitespace-delimited text with one sample per line:
//
//	HOT_VOLTS__ACVoltage_buf[0]	signed	int	-7437	XRAM:0x400
//
// The fields are a variable name, two type-descriptor tokens, the signed
// 32-bit sample value and an address token. Only the value is used by the
// analysis, but every field must be present for a line to be accepted.
package adc
