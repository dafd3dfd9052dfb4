package util

var romanNumMap = map[int]string{
	1: "I",
	2: "II",
	3: "III",
	4: "IV",
	5: "V",
	6: "VI",
	7: "VII",
}

var wordNumMap = map[int]string{
	1: "one",
	2: "two",
	3: "three",
	4: "four",
	5: "five",
	6: "six",
	7: "seven",
}

var ordinalWordNumMap = map[int]string{
	1: "first",
	2: "second",
	3: "third",
	4: "fourth",
	5: "fifth",
	6: "sixth",
	7: "seventh",
}

// ConvertToRoman only covers scale degrees (1-7); anything else is "".
func ConvertToRoman(num int) string {
	return romanNumMap[num]
}

func ConvertToWord(num int) string {
	return wordNumMap[num]
}

func ConvertToOrdinalWord(num int) string {
	return ordinalWordNumMap[num]
}
