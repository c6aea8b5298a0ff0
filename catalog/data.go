// SPDX-License-Identifier: MIT

package catalog

// entry is one row of the literal S-Gram table.
type entry struct {
	index          int
	catalan        int64
	num, den       int64
	base           int
	expansion      int
	notation       string
	transformation string
	patterns       []keyed
	factors        []keyed
}

// keyed is one divisor key with its state sequence, in listing order.
type keyed struct {
	key string
	seq []int
}

// table is the fixed definitional data for indices 0-11.
// Sequences are literal; nothing here is derived at runtime.
var table = []entry{
	{
		index: 0, catalan: 1, num: 0, den: 0, base: 1, expansion: 0,
		notation:       "[0)(0] = [0] ~> [-] = ()",
		transformation: "[(][)] = (][)(][) = (-) = () = O",
		patterns: []keyed{
			{"0/1", []int{0}},
		},
	},
	{
		index: 1, catalan: 2, num: 1, den: 1, base: 1, expansion: 1,
		notation:       "[1)(1] = [1] ~> [(0)] = []",
		transformation: "[)(] = )[()]( = )|( = ][ = I",
		patterns: []keyed{
			{"1/1", []int{1}},
		},
		factors: []keyed{
			{"1/1", []int{1}},
		},
	},
	{
		index: 2, catalan: 5, num: 2, den: 4, base: 2, expansion: 3,
		notation:       "[2)(1] = [2] ~> [([1])] = [([])]",
		transformation: "[()] = [(][)] = [(I)] = IO",
		patterns: []keyed{
			{"1/3", []int{1, 3}},
			{"1/2", []int{2}},
		},
		factors: []keyed{
			{"1/1", []int{4}},
		},
	},
	{
		index: 3, catalan: 14, num: 3, den: 9, base: 3, expansion: 7,
		notation:       "[3)(1] = [3] ~> [([2])] = [([()])]",
		transformation: "[(())]",
		patterns: []keyed{
			{"1/7", []int{1, 4, 2, 8, 5, 7}},
			{"1/3", []int{3, 6}},
		},
		factors: []keyed{
			{"1/1", []int{9}},
		},
	},
	{
		index: 4, catalan: 42, num: 4, den: 16, base: 4, expansion: 13,
		notation:       "[4] = [2][2] = [(1)][(1)]",
		transformation: "[()][()] = [()()]",
		patterns: []keyed{
			{"1/13", []int{1, 5, 3, 15, 11, 13}},
			{"2/13", []int{2, 10, 7, 14, 6, 9}},
			{"1/4", []int{4, 8, 12}},
		},
		factors: []keyed{
			{"1/4", []int{4, 12}},
			{"1/2", []int{8}},
			{"1/1", []int{16}},
		},
	},
	{
		index: 5, catalan: 132, num: 5, den: 25, base: 5, expansion: 21,
		notation:       "[5] ~> [([3])] = [([(())])]",
		transformation: "[((()))]",
		patterns: []keyed{
			{"1/21", []int{1, 6, 4, 24, 19, 21}},
			{"2/21", []int{2, 12, 9, 23, 13, 16}},
			{"3/21", []int{3, 18, 14, 22, 7, 11}},
			{"7/21", []int{8, 17}},
			{"1/5", []int{5, 10, 15, 20}},
		},
		factors: []keyed{
			{"1/1", []int{25}},
		},
	},
	{
		index: 6, catalan: 429, num: 6, den: 36, base: 6, expansion: 31,
		notation:       "[6] = [2][3] = [()][(())]",
		transformation: "[()(())]",
		patterns: []keyed{
			{"1/31", []int{1, 7, 5, 35, 29, 31}},
			{"2/31", []int{2, 14, 11, 34, 22, 25}},
			{"3/31", []int{3, 21, 17, 33, 15, 19}},
			{"4/31", []int{4, 28, 23, 32, 8, 13}},
			{"8/31", []int{9, 20, 10, 27, 16, 26}},
			{"1/6", []int{6, 12, 18, 24, 30}},
		},
		factors: []keyed{
			{"1/6", []int{6, 30}},
			{"1/3", []int{12, 24}},
			{"1/2", []int{18}},
			{"1/1", []int{36}},
		},
	},
	{
		index: 7, catalan: 1430, num: 7, den: 49, base: 7, expansion: 43,
		notation:       "[7] = [([4])] = [([()()])]",
		transformation: "[(()())]",
		patterns: []keyed{
			{"1/43", []int{1, 8, 6, 48, 41, 43}},
			{"2/43", []int{2, 16, 13, 47, 33, 36}},
			{"3/43", []int{3, 24, 20, 46, 25, 29}},
			{"4/43", []int{4, 32, 27, 45, 17, 22}},
			{"5/43", []int{5, 40, 34, 44, 9, 15}},
			{"9/43", []int{10, 23, 12, 39, 26, 37}},
			{"10/43", []int{11, 31, 19, 38, 18, 30}},
			{"1/7", []int{7, 14, 21, 28, 35, 42}},
		},
		factors: []keyed{
			{"1/1", []int{49}},
		},
	},
	{
		index: 8, catalan: 4862, num: 8, den: 64, base: 8, expansion: 57,
		notation:       "[8] = [2][2][2] = [3[2]] = [()][()][()] ",
		transformation: "[()()()]",
		patterns: []keyed{
			{"1/57", []int{1, 9, 7, 63, 55, 57}},
			{"2/57", []int{2, 18, 15, 62, 46, 49}},
			{"3/57", []int{3, 27, 23, 61, 37, 41}},
			{"4/57", []int{4, 36, 31, 60, 28, 33}},
			{"5/57", []int{5, 45, 39, 59, 19, 25}},
			{"6/57", []int{6, 54, 47, 58, 10, 17}},
			{"10/57", []int{11, 26, 14, 53, 38, 50}},
			{"11/57", []int{12, 35, 22, 52, 29, 42}},
			{"12/57", []int{13, 44, 30, 51, 20, 34}},
			{"19/57", []int{21, 43}},
			{"1/8", []int{8, 16, 24, 32, 40, 48, 56}},
		},
		factors: []keyed{
			{"1/8", []int{8, 24, 40, 56}},
			{"1/4", []int{16, 48}},
			{"1/2", []int{32}},
			{"1/1", []int{64}},
		},
	},
	{
		index: 9, catalan: 16796, num: 9, den: 81, base: 9, expansion: 73,
		notation:       "[9] = [3][3] = [2[3]] = [(())][(())]",
		transformation: "[(())(())]",
		patterns: []keyed{
			{"1/73", []int{1, 10, 8, 80, 71, 73}},
			{"2/73", []int{2, 20, 17, 79, 61, 64}},
			{"3/73", []int{3, 30, 26, 78, 51, 55}},
			{"4/73", []int{4, 40, 35, 77, 41, 46}},
			{"5/73", []int{5, 50, 44, 76, 31, 37}},
			{"6/73", []int{6, 60, 53, 75, 21, 28}},
			{"7/73", []int{7, 70, 62, 74, 11, 19}},
			{"11/73", []int{12, 29, 16, 69, 52, 65}},
			{"12/73", []int{13, 39, 25, 68, 42, 56}},
			{"13/73", []int{14, 49, 34, 67, 32, 47}},
			{"14/73", []int{15, 59, 43, 66, 22, 38}},
			{"21/73", []int{23, 48, 24, 58, 33, 57}},
			{"1/9", []int{9, 18, 27, 36, 45, 54, 63, 72}},
		},
		factors: []keyed{
			{"1/9", []int{9, 18, 36, 45, 63, 72}},
			{"1/3", []int{27, 54}},
			{"1/1", []int{81}},
		},
	},
	{
		index: 10, catalan: 58786, num: 10, den: 100, base: 10, expansion: 91,
		notation:       "[10] = [2][5] = [()][((()))]",
		transformation: "[()((()))]",
		patterns: []keyed{
			{"1/91", []int{1, 11, 9, 99, 89, 91}},
			{"2/91", []int{2, 22, 19, 98, 78, 81}},
			{"3/91", []int{3, 33, 29, 97, 67, 71}},
			{"4/91", []int{4, 44, 39, 96, 56, 61}},
			{"5/91", []int{5, 55, 49, 95, 45, 51}},
			{"6/91", []int{6, 66, 59, 94, 34, 41}},
			{"7/91", []int{7, 77, 69, 93, 23, 31}},
			{"8/91", []int{8, 88, 79, 92, 12, 21}},
			{"12/91", []int{13, 32, 18, 87, 68, 82}},
			{"13/91", []int{14, 43, 28, 86, 57, 72}},
			{"14/91", []int{15, 54, 38, 85, 46, 62}},
			{"15/91", []int{16, 65, 48, 84, 35, 52}},
			{"16/91", []int{17, 76, 58, 83, 24, 42}},
			{"23/91", []int{25, 53, 27, 75, 47, 73}},
			{"24/91", []int{26, 64, 37, 74, 36, 63}},
			{"1/10", []int{10, 20, 30, 40, 50, 60, 70, 80, 90}},
		},
		factors: []keyed{
			{"1/10", []int{10, 30, 70, 90}},
			{"1/5", []int{20, 40, 60, 80}},
			{"1/2", []int{50}},
			{"1/1", []int{100}},
		},
	},
	{
		index: 11, catalan: 208012, num: 11, den: 121, base: 11, expansion: 111,
		notation:       "[11] = [[5]] = [[((()))]]",
		transformation: "[(((())))]",
		patterns: []keyed{
			{"1/111", []int{1, 12, 10, 120, 109, 111}},
			{"2/111", []int{2, 24, 21, 119, 97, 100}},
			{"3/111", []int{3, 36, 32, 118, 85, 89}},
			{"4/111", []int{4, 48, 43, 117, 73, 78}},
			{"5/111", []int{5, 60, 54, 116, 61, 67}},
			{"6/111", []int{6, 72, 65, 115, 49, 56}},
			{"7/111", []int{7, 84, 76, 114, 37, 45}},
			{"8/111", []int{8, 96, 87, 113, 25, 34}},
			{"9/111", []int{9, 108, 98, 112, 13, 23}},
			{"13/111", []int{14, 35, 20, 107, 86, 101}},
			{"14/111", []int{15, 47, 31, 106, 74, 90}},
			{"15/111", []int{16, 59, 42, 105, 62, 79}},
			{"16/111", []int{17, 71, 53, 104, 50, 68}},
			{"17/111", []int{18, 83, 64, 103, 38, 57}},
			{"18/111", []int{19, 95, 75, 102, 26, 46}},
			{"25/111", []int{27, 58, 30, 94, 63, 91}},
			{"26/111", []int{28, 70, 41, 93, 51, 80}},
			{"27/111", []int{29, 82, 52, 92, 39, 69}},
			{"37/111", []int{40, 81}},
			{"1/11", []int{11, 22, 33, 44, 55, 66, 77, 88, 99, 110}},
		},
		factors: []keyed{
			{"1/1", []int{121}},
		},
	},
}
