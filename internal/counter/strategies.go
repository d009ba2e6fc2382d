package counter

import (
	"sort"

	"github.com/SlpAus/royale-coach-backend/internal/card"
)

// 常用放置点位
var (
	centerDefense    = TilePosition{X: 9, Y: 16}
	centerPull       = TilePosition{X: 9, Y: 17}
	kiteLeft         = TilePosition{X: 3, Y: 17}
	antiTankOnTop    = TilePosition{X: 9, Y: 18}
	oppositeLanePush = TilePosition{X: 14, Y: 22}
)

// counterStrategies 是按目标卡牌slug索引的克制方案库。
var counterStrategies = map[string]CounterStrategy{
	"hog-rider": {
		TargetCard: "Hog Rider",
		CounterCards: []CounterCard{
			{
				Card: "Cannon", Cost: 3, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: centerDefense, Card: "Cannon",
					Description: "Place Cannon 3-4 tiles from river in center to pull Hog into both towers"}},
				Notes: "Cannon placement is critical. Too far forward and both towers won't target it.",
			},
			{
				Card: "Knight", Cost: 3, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: centerPull, Card: "Knight",
					Description: "Place Knight directly on top of Hog Rider as it crosses the bridge"}},
				Notes: "Knight tanks hits and minimizes tower damage. Works best against a lone Hog.",
			},
			{
				Card: "Tesla", Cost: 4, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: centerDefense, Card: "Tesla",
					Description: "Place Tesla in center defensive position"}},
				Notes: "Tesla fully counters Hog with no damage and can retarget afterwards.",
			},
			{
				Card: "Tombstone", Cost: 3, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: centerDefense, Card: "Tombstone",
					Description: "Place Tombstone centrally to distract Hog and spawn skeletons"}},
				Notes: "Spawned skeletons chip the Hog. May allow 1-2 hits. Good cycle option.",
			},
		},
	},
	"mega-knight": {
		TargetCard: "Mega Knight",
		CounterCards: []CounterCard{
			{
				Card: "P.E.K.K.A", Cost: 7, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: antiTankOnTop, Card: "P.E.K.K.A",
					Description: "Drop P.E.K.K.A directly on the Mega Knight after it lands"}},
				Notes: "P.E.K.K.A shreds Mega Knight in a few swings. Avoid placing before the jump.",
			},
			{
				Card: "Mini P.E.K.K.A", Cost: 4, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: centerPull, Card: "Mini P.E.K.K.A",
					Description: "Place Mini P.E.K.K.A with tower support once the Mega Knight commits"}},
				Notes: "Positive trade with tower help. Keep support troops spread to dodge the jump.",
			},
			{
				Card: "Inferno Tower", Cost: 5, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: centerDefense, Card: "Inferno Tower",
					Description: "Place Inferno Tower in the center to melt the Mega Knight"}},
				Notes: "Melts the tank before it connects. Watch for Zap or Lightning resets.",
			},
		},
	},
	"balloon": {
		TargetCard: "Balloon",
		CounterCards: []CounterCard{
			{
				Card: "Tesla", Cost: 4, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: centerDefense, Card: "Tesla",
					Description: "Place Tesla centrally to pull and shoot down the Balloon"}},
				Notes: "Tesla pulls Balloon away from the tower and avoids the death bomb.",
			},
			{
				Card: "Musketeer", Cost: 4, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: kiteLeft, Card: "Musketeer",
					Description: "Place Musketeer at range so the Balloon drifts past her"}},
				Notes: "Kill it before it reaches the tower. Protect her from Lightning value.",
			},
			{
				Card: "Bats", Cost: 2, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: centerPull, Card: "Bats",
					Description: "Surround the Balloon with Bats once support is cleared"}},
				Notes: "Huge DPS for 2 elixir. Dies to any small spell, so bait it out first.",
			},
		},
	},
	"golem": {
		TargetCard: "Golem",
		CounterCards: []CounterCard{
			{
				Card: "Inferno Tower", Cost: 5, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: centerDefense, Card: "Inferno Tower",
					Description: "Place Inferno Tower centrally before the Golem crosses the bridge"}},
				Notes: "Melts Golem and both Golemites. The core answer to beatdown.",
			},
			{
				Card: "P.E.K.K.A", Cost: 7, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: antiTankOnTop, Card: "P.E.K.K.A",
					Description: "Meet the Golem at your side of the bridge"}},
				Notes: "Kill the tank then counterpush. Handle the support troops separately.",
			},
			{
				Card: "Elixir Collector", Cost: 6, Effectiveness: EffectivenessFair,
				Placement: []PlacementStep{{Position: oppositeLanePush, Card: "Elixir Collector",
					Description: "Out-cycle the Golem player by pumping behind the King Tower"}},
				Notes: "Not a direct counter. Builds the elixir lead you need to defend big pushes.",
			},
		},
	},
	"goblin-barrel": {
		TargetCard: "Goblin Barrel",
		CounterCards: []CounterCard{
			{
				Card: "The Log", Cost: 2, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: centerPull, Card: "The Log",
					Description: "Log the landing spot the moment the barrel is thrown"}},
				Notes: "Predict the landing tile. Watch for trick placements behind the tower.",
			},
			{
				Card: "Arrows", Cost: 3, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: centerPull, Card: "Arrows",
					Description: "Arrow the barrel in the air for a guaranteed clear"}},
				Notes: "Slightly negative trade but removes all three goblins with no damage.",
			},
			{
				Card: "Valkyrie", Cost: 4, Effectiveness: EffectivenessFair,
				Placement: []PlacementStep{{Position: centerPull, Card: "Valkyrie",
					Description: "Drop Valkyrie on the landing spot"}},
				Notes: "Spin clears the goblins after one or two stabs. Use when spells are out of cycle.",
			},
		},
	},
	"graveyard": {
		TargetCard: "Graveyard",
		CounterCards: []CounterCard{
			{
				Card: "Poison", Cost: 4, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: centerPull, Card: "Poison",
					Description: "Poison the Graveyard area covering your tower edge"}},
				Notes: "Kills every skeleton as it spawns. The cleanest Graveyard answer.",
			},
			{
				Card: "Valkyrie", Cost: 4, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: centerPull, Card: "Valkyrie",
					Description: "Place Valkyrie inside the Graveyard circle"}},
				Notes: "Spins down the skeletons. Pair with a cheap card for the tank in front.",
			},
			{
				Card: "Knight", Cost: 3, Effectiveness: EffectivenessFair,
				Placement: []PlacementStep{{Position: centerPull, Card: "Knight",
					Description: "Place Knight on the tower edge to soak skeleton hits"}},
				Notes: "Tower plus Knight clears most of the wave. Expect some chip damage.",
			},
		},
	},
	"x-bow": {
		TargetCard: "X-Bow",
		CounterCards: []CounterCard{
			{
				Card: "Knight", Cost: 3, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: centerPull, Card: "Knight",
					Description: "Place Knight on top of the X-Bow as it deploys"}},
				Notes: "Tank the bolts while your tower and support chip it down.",
			},
			{
				Card: "Rocket", Cost: 6, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: centerDefense, Card: "Rocket",
					Description: "Rocket the X-Bow, clipping defenders next to it"}},
				Notes: "Removes the siege threat outright. Aim to clip a defending unit for value.",
			},
			{
				Card: "Fireball", Cost: 4, Effectiveness: EffectivenessFair,
				Placement: []PlacementStep{{Position: centerDefense, Card: "Fireball",
					Description: "Fireball the X-Bow and its defenders"}},
				Notes: "Softens the X-Bow for your tower to finish. Needs a troop to tank first.",
			},
		},
	},
	"sparky": {
		TargetCard: "Sparky",
		CounterCards: []CounterCard{
			{
				Card: "Zap", Cost: 2, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: centerPull, Card: "Zap",
					Description: "Zap the Sparky just before its shot releases"}},
				Notes: "Resets the charge. Buys four seconds for your troops to connect.",
			},
			{
				Card: "P.E.K.K.A", Cost: 7, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: antiTankOnTop, Card: "P.E.K.K.A",
					Description: "Tank the shot with P.E.K.K.A and cut Sparky down"}},
				Notes: "Survives two blasts. Combine with a reset spell for a clean kill.",
			},
			{
				Card: "Skeleton Army", Cost: 3, Effectiveness: EffectivenessFair,
				Placement: []PlacementStep{{Position: centerPull, Card: "Skeleton Army",
					Description: "Surround Sparky so the blast only kills a few skeletons"}},
				Notes: "Swarm from all sides. Fails badly if a splash support walks behind.",
			},
		},
	},
	"miner": {
		TargetCard: "Miner",
		CounterCards: []CounterCard{
			{
				Card: "Knight", Cost: 3, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: centerPull, Card: "Knight",
					Description: "Place Knight on the Miner's predicted dig spot"}},
				Notes: "Positive trade every time. Learn the common tower dig spots.",
			},
			{
				Card: "Skeletons", Cost: 1, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: centerPull, Card: "Skeletons",
					Description: "Drop Skeletons on the Miner as it surfaces"}},
				Notes: "Distracts and chips for one elixir. The cheapest Miner answer.",
			},
			{
				Card: "Valkyrie", Cost: 4, Effectiveness: EffectivenessFair,
				Placement: []PlacementStep{{Position: centerPull, Card: "Valkyrie",
					Description: "Cover the dig spot and any supporting troops"}},
				Notes: "Overkill for the Miner alone. Use when a punish deck sends support behind.",
			},
		},
	},
	"lava-hound": {
		TargetCard: "Lava Hound",
		CounterCards: []CounterCard{
			{
				Card: "Inferno Dragon", Cost: 4, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: centerDefense, Card: "Inferno Dragon",
					Description: "Lock the Inferno Dragon onto the Hound early"}},
				Notes: "Melts the Hound before it crosses. Keep it safe from Zap resets.",
			},
			{
				Card: "Musketeer", Cost: 4, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: kiteLeft, Card: "Musketeer",
					Description: "Shoot the Hound from a distance, then retarget the pups"}},
				Notes: "Steady air DPS. Needs a second air answer for the pup split.",
			},
			{
				Card: "Tesla", Cost: 4, Effectiveness: EffectivenessFair,
				Placement: []PlacementStep{{Position: centerDefense, Card: "Tesla",
					Description: "Pull the Hound toward the center with Tesla"}},
				Notes: "Buys time and pulls the pups off the tower after the pop.",
			},
		},
	},
	"p-e-k-k-a": {
		TargetCard: "P.E.K.K.A",
		CounterCards: []CounterCard{
			{
				Card: "Inferno Tower", Cost: 5, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: centerDefense, Card: "Inferno Tower",
					Description: "Melt the P.E.K.K.A from the center defensive position"}},
				Notes: "Out-ranges the sword. Protect the tower from reset spells.",
			},
			{
				Card: "Skeleton Army", Cost: 3, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: centerPull, Card: "Skeleton Army",
					Description: "Swarm the P.E.K.K.A from both sides"}},
				Notes: "Single-target attacker drowns in skeletons. Dies to any splash support.",
			},
			{
				Card: "Minion Horde", Cost: 5, Effectiveness: EffectivenessFair,
				Placement: []PlacementStep{{Position: centerPull, Card: "Minion Horde",
					Description: "Drop the horde on top once spells are out of cycle"}},
				Notes: "P.E.K.K.A cannot hit air. Risky into Arrows or Wizard.",
			},
		},
	},
	"royal-giant": {
		TargetCard: "Royal Giant",
		CounterCards: []CounterCard{
			{
				Card: "Inferno Tower", Cost: 5, Effectiveness: EffectivenessExcellent,
				Placement: []PlacementStep{{Position: centerDefense, Card: "Inferno Tower",
					Description: "Place Inferno Tower so it outranges the Royal Giant"}},
				Notes: "Forces the Giant to walk into range while melting.",
			},
			{
				Card: "Mini P.E.K.K.A", Cost: 4, Effectiveness: EffectivenessGood,
				Placement: []PlacementStep{{Position: antiTankOnTop, Card: "Mini P.E.K.K.A",
					Description: "Place Mini P.E.K.K.A directly on the Royal Giant"}},
				Notes: "Three hits and the Giant is gone. Handle Fisherman pulls first.",
			},
			{
				Card: "Tombstone", Cost: 3, Effectiveness: EffectivenessFair,
				Placement: []PlacementStep{{Position: centerDefense, Card: "Tombstone",
					Description: "Pull the Royal Giant to the center with Tombstone"}},
				Notes: "Buys time and spawns chip damage. Needs a troop to finish the job.",
			},
		},
	},
}

// GetStrategy 按用户输入的卡牌名查找克制方案。
// 查找键使用slug规范形式，与目录的宽容解析保持一致。
func GetStrategy(cardName string) (CounterStrategy, bool) {
	strategy, ok := counterStrategies[card.NormalizeCardName(cardName)]
	return strategy, ok
}

// AllTargetCards 返回所有有克制方案的目标卡牌显示名，按字典序排列。
func AllTargetCards() []string {
	names := make([]string, 0, len(counterStrategies))
	for _, strategy := range counterStrategies {
		names = append(names, strategy.TargetCard)
	}
	sort.Strings(names)
	return names
}
