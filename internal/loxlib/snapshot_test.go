package loxlib

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// scripts are small, self-contained Lox programs exercising one
// language feature each; their `print` output is snapshotted so a
// regression in any pipeline stage shows up as a diff here.
var scripts = map[string]string{
	"fibonacci": `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		for (var i = 0; i < 8; i = i + 1) print fib(i);
	`,
	"closures_and_counters": `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var a = makeCounter();
		var b = makeCounter();
		print a();
		print a();
		print b();
	`,
	"classes_and_inheritance": `
		class Shape {
			area() { return 0; }
			describe() { return "area is " + this.area(); }
		}
		class Square < Shape {
			init(side) { this.side = side; }
			area() { return this.side * this.side; }
		}
		var sq = Square(4);
		print sq.describe();
	`,
	"ternary_and_logical": `
		var a = true;
		var b = false;
		print a and b;
		print a or b;
		print a ? "yes" : "no";
		print (1 < 2) ? "less" : "not less";
	`,
	"break_in_nested_loops": `
		for (var i = 0; i < 3; i = i + 1) {
			var j = 0;
			while (true) {
				if (j >= 2) break;
				print "i=" + i + " j=" + j;
				j = j + 1;
			}
		}
	`,
}

func TestScriptSnapshots(t *testing.T) {
	for name, src := range scripts {
		t.Run(name, func(t *testing.T) {
			out, code := RunString(src, Options{})
			if code != ExitOK {
				t.Fatalf("script %s exited with code %d, output so far:\n%s", name, code, out)
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", name), out)
		})
	}
}
