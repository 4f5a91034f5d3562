package game

import "fmt"

// Evaluate scores guess against target with the standard two-pass Wordle
// algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count the remaining (non-correct) target letters; this is each letter's
//     misposition budget.
//
// Pass 2:
//   - For each non-correct position, left to right: if the letter still has
//     budget, mark Mispositioned and spend one; otherwise leave Unknown.
//
// Earlier positions win the budget when a letter repeats in the guess.
// Evaluate panics if the inputs differ in length.
func Evaluate(guess, target string) []LetterState {
	n := len(target)
	if len(guess) != n {
		panic(fmt.Sprintf("game: evaluate %q against %q: length mismatch", guess, target))
	}
	res := make([]LetterState, n)

	var budget [256]int

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = Correct
		} else {
			budget[target[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == Correct {
			continue
		}
		if c := guess[i]; budget[c] > 0 {
			res[i] = Mispositioned
			budget[c]--
		}
	}
	return res
}
