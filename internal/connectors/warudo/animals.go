package warudo

import (
	"fmt"

	"github.com/s21platform/stream-hub/internal/pkg/dsl"
)

type Animal struct {
	Name string
	Prop string
}

func quirky(vol int, pack, prefab string) string {
	return fmt.Sprintf("gameobject://resources/Props/Quirky Series Ultimate/Quirky Series Vol.%d/%s/Prefabs/%s", vol, pack, prefab)
}

// Animals are the plush props that can be spawned in the scene.
var Animals = []Animal{
	{"Arctic Fox", quirky(1, "Arctic Vol.1", "ArcticFox")},
	{"Ox", quirky(1, "Arctic Vol.1", "Ox")},
	{"Penguin", quirky(1, "Arctic Vol.1", "Penguin")},
	{"Polar Bear", quirky(1, "Arctic Vol.1", "PolarBear")},
	{"Reindeer", quirky(1, "Arctic Vol.1", "Reindeer")},
	{"Sea Lion", quirky(1, "Arctic Vol.1", "SeaLion")},
	{"Snow Owl", quirky(1, "Arctic Vol.1", "SnowOwl")},
	{"Snow Weasel", quirky(1, "Arctic Vol.1", "SnowWeasel")},
	{"Walrus", quirky(1, "Arctic Vol.1", "Walrus")},
	{"Buffalo", quirky(1, "Farm Vol.1", "Buffalo")},
	{"Chick", quirky(1, "Farm Vol.1", "Chick")},
	{"Cow", quirky(1, "Farm Vol.1", "Cow")},
	{"Donkey", quirky(1, "Farm Vol.1", "Donkey")},
	{"Duck", quirky(1, "Farm Vol.1", "Duck")},
	{"Hen", quirky(1, "Farm Vol.1", "Hen")},
	{"Pig", quirky(1, "Farm Vol.1", "Pig")},
	{"Rooster", quirky(1, "Farm Vol.1", "Rooster")},
	{"Sheep", quirky(1, "Farm Vol.1", "Sheep")},
	{"Crow", quirky(1, "Forest Vol.1", "Crow")},
	{"Eagle", quirky(1, "Forest Vol.1", "Eagle")},
	{"Fox", quirky(1, "Forest Vol.1", "Fox")},
	{"Hog", quirky(1, "Forest Vol.1", "Hog")},
	{"Hornbill", quirky(1, "Forest Vol.1", "Hornbill")},
	{"Owl", quirky(1, "Forest Vol.1", "Owl")},
	{"Raccoon", quirky(1, "Forest Vol.1", "Raccoon")},
	{"Snake", quirky(1, "Forest Vol.1", "Snake")},
	{"Wolf", quirky(1, "Forest Vol.1", "Wolf")},
	{"Cat", quirky(1, "Pets Vol.1", "Cat")},
	{"Dog", quirky(1, "Pets Vol.1", "Dog")},
	{"Dove", quirky(1, "Pets Vol.1", "Dove")},
	{"Goldfish", quirky(1, "Pets Vol.1", "Goldfish")},
	{"Mouse", quirky(1, "Pets Vol.1", "Mouse")},
	{"Parrot", quirky(1, "Pets Vol.1", "Parrot")},
	{"Pigeon", quirky(1, "Pets Vol.1", "Pigeon")},
	{"Rabbit", quirky(1, "Pets Vol.1", "Rabbit")},
	{"Tortoise", quirky(1, "Pets Vol.1", "Tortoise")},
	{"Cheetah", quirky(1, "Safari Vol.1", "Cheetah")},
	{"Elephant", quirky(1, "Safari Vol.1", "Elephant")},
	{"Flamingo", quirky(1, "Safari Vol.1", "Flamingo")},
	{"Gazelle", quirky(1, "Safari Vol.1", "Gazelle")},
	{"Hippo", quirky(1, "Safari Vol.1", "Hippo")},
	{"Hyena", quirky(1, "Safari Vol.1", "Hyena")},
	{"Ostrich", quirky(1, "Safari Vol.1", "Ostrich")},
	{"Rhino", quirky(1, "Safari Vol.1", "Rhino")},
	{"Zebra", quirky(1, "Safari Vol.1", "Zebra")},
	{"Armadillo", quirky(2, "Desert Vol.1", "Armadillo")},
	{"Bighorn", quirky(2, "Desert Vol.1", "Bighorn")},
	{"Camel", quirky(2, "Desert Vol.1", "Camel")},
	{"Coyote", quirky(2, "Desert Vol.1", "Coyote")},
	{"Gila Monster", quirky(2, "Desert Vol.1", "GilaMonster")},
	{"Golden Eagle", quirky(2, "Desert Vol.1", "GoldenEagle")},
	{"Horned Lizard", quirky(2, "Desert Vol.1", "HornedLizard")},
	{"Pronghorn", quirky(2, "Desert Vol.1", "Pronghorn")},
	{"Rattlesnake", quirky(2, "Desert Vol.1", "Rattlesnake")},
	{"Emu", quirky(2, "Island Vol.1", "Emu")},
	{"Kangaroo", quirky(2, "Island Vol.1", "Kangaroo")},
	{"Koala", quirky(2, "Island Vol.1", "Koala")},
	{"Kookaburra", quirky(2, "Island Vol.1", "Kookaburra")},
	{"Platypus", quirky(2, "Island Vol.1", "Platypus")},
	{"Possum", quirky(2, "Island Vol.1", "Possum")},
	{"Quokka", quirky(2, "Island Vol.1", "Quokka")},
	{"Tasmanian Devil", quirky(2, "Island Vol.1", "TasmanianDevil")},
	{"Wombat", quirky(2, "Island Vol.1", "Wombat")},
	{"Bat", quirky(2, "Jungle Vol.1", "Bat")},
	{"Cobra", quirky(2, "Jungle Vol.1", "Cobra")},
	{"Gorilla", quirky(2, "Jungle Vol.1", "Gorilla")},
	{"Panda", quirky(2, "Jungle Vol.1", "Panda")},
	{"Peacock", quirky(2, "Jungle Vol.1", "Peacock")},
	{"Red Panda", quirky(2, "Jungle Vol.1", "RedPanda")},
	{"Sloth", quirky(2, "Jungle Vol.1", "Sloth")},
	{"Tapir", quirky(2, "Jungle Vol.1", "Tapir")},
	{"Tiger", quirky(2, "Jungle Vol.1", "Tiger")},
	{"Arowana", quirky(2, "River Vol.1", "Arowana")},
	{"Beaver", quirky(2, "River Vol.1", "Beaver")},
	{"Carp", quirky(2, "River Vol.1", "Carp")},
	{"Crocodile", quirky(2, "River Vol.1", "Crocodile")},
	{"Frog", quirky(2, "River Vol.1", "Frog")},
	{"Kingfisher", quirky(2, "River Vol.1", "Kingfisher")},
	{"Manatee", quirky(2, "River Vol.1", "Manatee")},
	{"Snapping Turtle", quirky(2, "River Vol.1", "SnappingTurtle")},
	{"Swan", quirky(2, "River Vol.1", "Swan")},
	{"Clownfish", quirky(2, "Sea Vol.1", "Clownfish")},
	{"Crab", quirky(2, "Sea Vol.1", "Crab")},
	{"Dolphin", quirky(2, "Sea Vol.1", "Dolphin")},
	{"Lobster", quirky(2, "Sea Vol.1", "Lobster")},
	{"Orca", quirky(2, "Sea Vol.1", "Orca")},
	{"Pelican", quirky(2, "Sea Vol.1", "Pelican")},
	{"Sea Horse", quirky(2, "Sea Vol.1", "SeaHorse")},
	{"Sea Otter", quirky(2, "Sea Vol.1", "SeaOtter")},
	{"Squid", quirky(2, "Sea Vol.1", "Squid")},
	{"Beluga", quirky(3, "Arctic Vol.2", "Beluga")},
	{"Cougar", quirky(3, "Arctic Vol.2", "Cougar")},
	{"Hare", quirky(3, "Arctic Vol.2", "Hare")},
	{"Husky", quirky(3, "Arctic Vol.2", "Husky")},
	{"Lynx", quirky(3, "Arctic Vol.2", "Lynx")},
	{"Moose", quirky(3, "Arctic Vol.2", "Moose")},
	{"Narwhal", quirky(3, "Arctic Vol.2", "Narwhal")},
	{"Puffin", quirky(3, "Arctic Vol.2", "Puffin")},
	{"Snow Leopard", quirky(3, "Arctic Vol.2", "SnowLeopard")},
	{"Alpaca", quirky(3, "Farm Vol.2", "Alpaca")},
	{"Bull", quirky(3, "Farm Vol.2", "Bull")},
	{"Goat", quirky(3, "Farm Vol.2", "Goat")},
	{"Goose", quirky(3, "Farm Vol.2", "Goose")},
	{"Horse", quirky(3, "Farm Vol.2", "Horse")},
	{"Lamb", quirky(3, "Farm Vol.2", "Lamb")},
	{"Llama", quirky(3, "Farm Vol.2", "Llama")},
	{"Mallard", quirky(3, "Farm Vol.2", "Mallard")},
	{"Turkey", quirky(3, "Farm Vol.2", "Turkey")},
	{"Badger", quirky(3, "Forest Vol.2", "Badger")},
	{"Bear", quirky(3, "Forest Vol.2", "Bear")},
	{"Cardinal", quirky(3, "Forest Vol.2", "Cardinal")},
	{"Deer", quirky(3, "Forest Vol.2", "Deer")},
	{"Lemur", quirky(3, "Forest Vol.2", "Lemur")},
	{"Marten", quirky(3, "Forest Vol.2", "Marten")},
	{"Mole", quirky(3, "Forest Vol.2", "Mole")},
	{"Skunk", quirky(3, "Forest Vol.2", "Skunk")},
	{"Toucan", quirky(3, "Forest Vol.2", "Toucan")},
	{"Chameleon", quirky(3, "Pets Vol.2", "Chameleon")},
	{"Chipmunk", quirky(3, "Pets Vol.2", "Chipmunk")},
	{"Ferret", quirky(3, "Pets Vol.2", "Ferret")},
	{"Hamster", quirky(3, "Pets Vol.2", "Hamster")},
	{"Hedgehog", quirky(3, "Pets Vol.2", "Hedgehog")},
	{"Iguana", quirky(3, "Pets Vol.2", "Iguana")},
	{"Monkey", quirky(3, "Pets Vol.2", "Monkey")},
	{"Python", quirky(3, "Pets Vol.2", "Python")},
	{"Squirrel", quirky(3, "Pets Vol.2", "Squirrel")},
	{"Antelope", quirky(3, "Safari Vol.2", "Antelope")},
	{"Baboon", quirky(3, "Safari Vol.2", "Baboon")},
	{"Bison", quirky(3, "Safari Vol.2", "Bison")},
	{"Giraffe", quirky(3, "Safari Vol.2", "Giraffe")},
	{"Jackal", quirky(3, "Safari Vol.2", "Jackal")},
	{"Lion", quirky(3, "Safari Vol.2", "Lion")},
	{"Lioness", quirky(3, "Safari Vol.2", "Lioness")},
	{"Serval", quirky(3, "Safari Vol.2", "Serval")},
	{"Wildebeest", quirky(3, "Safari Vol.2", "Wildebeest")},
}

func RandomAnimal(r dsl.Random) Animal {
	return Animals[r.IntN(len(Animals))]
}
