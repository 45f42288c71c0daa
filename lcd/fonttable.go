package lcd

// fontTable maps an HD44780A00 character-generator ROM code to the
// glyph rendered on screen. Rows 0x20-0x7D are the standard ASCII
// subset the datasheet's CGROM shares with ASCII; the Japanese
// half-width-katakana block (0xA1-0xDF) and the European/Greek-ish
// row (0xE0-0xFE) are approximated with their closest Unicode
// equivalents, matching the printable set lcd.rs::FONT_TABLE carries.
// 0xFF is the all-black glyph used for the blink-inverse cursor cell.
var fontTable = buildFontTable()

func buildFontTable() [256]rune {
	var t [256]rune
	for i := range t {
		t[i] = ' '
	}
	for i := 0x20; i <= 0x7D; i++ {
		t[i] = rune(i)
	}
	t[0x7E] = '→'
	t[0x7F] = '←'
	for i, r := range []rune("｡｢｣､･ｦｧｨｩｪｫｬｭｮｯｰｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝﾞﾟ") {
		t[0xA1+i] = r
	}
	for i, r := range []rune("αäβεμσρgq√¹jˣ¢ℓñö") {
		t[0xE0+i] = r
	}
	t[0xF1] = 'p'
	t[0xF2] = 'q'
	t[0xF3] = 'θ'
	t[0xF4] = '∞'
	t[0xF5] = 'Ω'
	t[0xF6] = 'ü'
	t[0xF7] = 'Σ'
	t[0xF8] = 'π'
	t[0xF9] = '÷'
	t[0xFA] = '÷'
	t[0xFE] = ' '
	t[0xFF] = '█'
	return t
}
