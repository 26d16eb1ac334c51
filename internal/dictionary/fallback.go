package dictionary

import "github.com/anselmlong/autocorrect/pkg/symspell"

// fallbackWords is the compiled-in word list used when neither a
// user-supplied dictionary file nor the well-known built-in file is
// available. Frequencies are rough relative-usage weights, not measured
// corpus counts. Carried over from the original implementation's embedded
// list so the service is still useful with zero files on disk.
var fallbackWords = []symspell.DictionaryEntry{
	{Word: "the", Frequency: 1000000}, {Word: "be", Frequency: 500000},
	{Word: "to", Frequency: 450000}, {Word: "of", Frequency: 400000},
	{Word: "and", Frequency: 380000}, {Word: "a", Frequency: 350000},
	{Word: "in", Frequency: 320000}, {Word: "that", Frequency: 300000},
	{Word: "have", Frequency: 280000}, {Word: "i", Frequency: 270000},
	{Word: "it", Frequency: 260000}, {Word: "for", Frequency: 250000},
	{Word: "not", Frequency: 240000}, {Word: "on", Frequency: 230000},
	{Word: "with", Frequency: 220000}, {Word: "he", Frequency: 210000},
	{Word: "as", Frequency: 200000}, {Word: "you", Frequency: 195000},
	{Word: "do", Frequency: 190000}, {Word: "at", Frequency: 185000},
	{Word: "this", Frequency: 180000}, {Word: "but", Frequency: 175000},
	{Word: "his", Frequency: 170000}, {Word: "by", Frequency: 165000},
	{Word: "from", Frequency: 160000}, {Word: "they", Frequency: 155000},
	{Word: "we", Frequency: 150000}, {Word: "say", Frequency: 145000},
	{Word: "her", Frequency: 140000}, {Word: "she", Frequency: 135000},
	{Word: "or", Frequency: 130000}, {Word: "an", Frequency: 125000},
	{Word: "will", Frequency: 120000}, {Word: "my", Frequency: 115000},
	{Word: "one", Frequency: 110000}, {Word: "all", Frequency: 105000},
	{Word: "would", Frequency: 100000}, {Word: "there", Frequency: 98000},
	{Word: "their", Frequency: 96000}, {Word: "what", Frequency: 94000},
	{Word: "so", Frequency: 92000}, {Word: "up", Frequency: 90000},
	{Word: "out", Frequency: 88000}, {Word: "if", Frequency: 86000},
	{Word: "about", Frequency: 84000}, {Word: "who", Frequency: 82000},
	{Word: "get", Frequency: 80000}, {Word: "which", Frequency: 78000},
	{Word: "go", Frequency: 76000}, {Word: "me", Frequency: 74000},
	{Word: "when", Frequency: 72000}, {Word: "make", Frequency: 70000},
	{Word: "can", Frequency: 68000}, {Word: "like", Frequency: 66000},
	{Word: "time", Frequency: 64000}, {Word: "no", Frequency: 62000},
	{Word: "just", Frequency: 60000}, {Word: "him", Frequency: 58000},
	{Word: "know", Frequency: 56000}, {Word: "take", Frequency: 54000},
	{Word: "people", Frequency: 52000}, {Word: "into", Frequency: 50000},
	{Word: "year", Frequency: 48000}, {Word: "your", Frequency: 46000},
	{Word: "good", Frequency: 44000}, {Word: "some", Frequency: 42000},
	{Word: "could", Frequency: 40000}, {Word: "them", Frequency: 38000},
	{Word: "see", Frequency: 36000}, {Word: "other", Frequency: 34000},
	{Word: "than", Frequency: 32000}, {Word: "then", Frequency: 30000},
	{Word: "now", Frequency: 28000}, {Word: "look", Frequency: 26000},
	{Word: "only", Frequency: 24000}, {Word: "come", Frequency: 22000},
	{Word: "its", Frequency: 20000}, {Word: "over", Frequency: 19000},
	{Word: "think", Frequency: 18000}, {Word: "also", Frequency: 17000},
	{Word: "back", Frequency: 16000}, {Word: "after", Frequency: 15000},
	{Word: "use", Frequency: 14000}, {Word: "two", Frequency: 13000},
	{Word: "how", Frequency: 12000}, {Word: "our", Frequency: 11000},
	{Word: "work", Frequency: 10000}, {Word: "first", Frequency: 9500},
	{Word: "well", Frequency: 9000}, {Word: "way", Frequency: 8500},
	{Word: "even", Frequency: 8000}, {Word: "new", Frequency: 7500},
	{Word: "want", Frequency: 7000}, {Word: "because", Frequency: 6500},
	{Word: "any", Frequency: 6000}, {Word: "these", Frequency: 5500},
	{Word: "give", Frequency: 5000}, {Word: "day", Frequency: 4800},
	{Word: "most", Frequency: 4600}, {Word: "us", Frequency: 4400},
	{Word: "is", Frequency: 500000}, {Word: "was", Frequency: 450000},
	{Word: "are", Frequency: 400000}, {Word: "were", Frequency: 350000},
	{Word: "been", Frequency: 300000}, {Word: "being", Frequency: 250000},
	{Word: "am", Frequency: 200000}, {Word: "hello", Frequency: 15000},
	{Word: "world", Frequency: 14000}, {Word: "computer", Frequency: 12000},
	{Word: "program", Frequency: 11000}, {Word: "software", Frequency: 10000},
	{Word: "hardware", Frequency: 9000}, {Word: "internet", Frequency: 8500},
	{Word: "email", Frequency: 8000}, {Word: "please", Frequency: 7500},
	{Word: "thank", Frequency: 7000}, {Word: "thanks", Frequency: 6500},
	{Word: "yes", Frequency: 6000}, {Word: "okay", Frequency: 5500},
	{Word: "receive", Frequency: 5000},
}
