package engine

const (
	fullHousePoints = 25
	straightPoints  = 30
	yachtPoints     = 50
)

var (
	littleStraight = [DiceCount]int{1, 2, 3, 4, 5}
	bigStraight    = [DiceCount]int{2, 3, 4, 5, 6}
)

// Evaluate returns the points roll would earn in category c. It never
// mutates the roll.
//
// The straights compare the dice in their current order, so an unsorted
// 5-4-3-2-1 scores nothing as a Little Straight.
func Evaluate(roll Roll, c Category) int {
	switch c {
	case Aces, Twos, Threes, Fours, Fives, Sixes:
		face := c.Index()
		return face * roll.counts()[face]
	case FourOfKind:
		counts := roll.counts()
		for face := 1; face <= Faces; face++ {
			if counts[face] >= 4 {
				return 4 * face
			}
		}
		return 0
	case FullHouse:
		var three, two bool
		for _, n := range roll.counts() {
			switch n {
			case 3:
				three = true
			case 2:
				two = true
			}
		}
		if three && two {
			return fullHousePoints
		}
		return 0
	case LittleStraight:
		if roll.Dice == littleStraight {
			return straightPoints
		}
		return 0
	case BigStraight:
		if roll.Dice == bigStraight {
			return straightPoints
		}
		return 0
	case Yacht:
		if roll.counts()[roll.Dice[0]] == DiceCount {
			return yachtPoints
		}
		return 0
	case Chance:
		return roll.sum()
	}
	invariant(false, "category %d outside 0..%d", int(c), CategoryCount-1)
	return 0
}
