package eco

// defaultTable is a small built-in opening table in LoadFromReader format.
const defaultTable = `
# code | opening | variation | moves from the initial position
A00 | Polish Opening |  | b2b4
A04 | Reti Opening |  | g1f3
A10 | English Opening |  | c2c4
A40 | Queen's Pawn |  | d2d4
A45 | Queen's Pawn | Indian Defence | d2d4 g8f6
B00 | King's Pawn |  | e2e4
B01 | Scandinavian Defence |  | e2e4 d7d5
B10 | Caro-Kann Defence |  | e2e4 c7c6
B20 | Sicilian Defence |  | e2e4 c7c5
B90 | Sicilian | Najdorf | e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6
C00 | French Defence |  | e2e4 e7e6
C20 | King's Pawn Game |  | e2e4 e7e5
C42 | Petrov Defence |  | e2e4 e7e5 g1f3 g8f6
C44 | King's Pawn Game | Knight Development | e2e4 e7e5 g1f3 b8c6
C50 | Giuoco Piano |  | e2e4 e7e5 g1f3 b8c6 f1c4 f8c5
C60 | Ruy Lopez |  | e2e4 e7e5 g1f3 b8c6 f1b5
C68 | Ruy Lopez | Exchange Variation | e2e4 e7e5 g1f3 b8c6 f1b5 a7a6 b5c6
D00 | Queen's Pawn Game |  | d2d4 d7d5
D06 | Queen's Gambit |  | d2d4 d7d5 c2c4
D20 | Queen's Gambit Accepted |  | d2d4 d7d5 c2c4 d5c4
D30 | Queen's Gambit Declined |  | d2d4 d7d5 c2c4 e7e6
D35 | Queen's Gambit Declined | Exchange Variation | d2d4 d7d5 c2c4 e7e6 b1c3 g8f6 c4d5 e6d5
E20 | Nimzo-Indian Defence |  | d2d4 g8f6 c2c4 e7e6 b1c3 f8b4
E60 | King's Indian Defence |  | d2d4 g8f6 c2c4 g7g6
`
