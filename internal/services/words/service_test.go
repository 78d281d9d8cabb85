package words

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabble-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	board   *model.Board
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
	s.board = model.NewBoard()
}

// place puts letters on the board starting at (row, col) going right
func (s *ServiceSuite) placeAcross(row, col int, letters string) []model.Position {
	var positions []model.Position
	for i, ch := range letters {
		pos := model.Position{Row: row, Col: col + i}
		s.Require().NoError(s.board.Place(pos, model.Letter(ch)))
		positions = append(positions, pos)
	}
	return positions
}

func (s *ServiceSuite) texts(found []model.Word) []string {
	out := make([]string, 0, len(found))
	for _, w := range found {
		out = append(out, w.Text)
	}
	return out
}

func (s *ServiceSuite) TestSingleHorizontalWord() {
	positions := s.placeAcross(7, 6, "CAT")

	found := s.service.Extract(s.board, positions)

	s.Require().Len(found, 1)
	s.Equal("CAT", found[0].Text)
	s.True(found[0].Horizontal)
	s.Equal(positions, found[0].Positions)
}

func (s *ServiceSuite) TestVerticalWord() {
	var positions []model.Position
	for i, ch := range "DOG" {
		pos := model.Position{Row: 6 + i, Col: 7}
		s.Require().NoError(s.board.Place(pos, model.Letter(ch)))
		positions = append(positions, pos)
	}

	found := s.service.Extract(s.board, positions)

	s.Require().Len(found, 1)
	s.Equal("DOG", found[0].Text)
	s.False(found[0].Horizontal)
	s.Equal(model.Position{Row: 6, Col: 7}, found[0].Start())
}

func (s *ServiceSuite) TestSingleTileFormsNoWord() {
	positions := s.placeAcross(7, 7, "A")

	s.Empty(s.service.Extract(s.board, positions))
}

func (s *ServiceSuite) TestExtendsThroughExistingTiles() {
	s.placeAcross(7, 6, "CAT")
	s.board.Commit()
	positions := s.placeAcross(7, 9, "S")

	found := s.service.Extract(s.board, positions)

	s.Equal([]string{"CATS"}, s.texts(found))
}

func (s *ServiceSuite) TestCrossWords() {
	s.placeAcross(7, 7, "AT")
	s.board.Commit()
	positions := s.placeAcross(8, 7, "TO")

	found := s.service.Extract(s.board, positions)

	s.ElementsMatch([]string{"TO", "AT", "TO"}, s.texts(found))
}

func (s *ServiceSuite) TestWordReachedTwiceIsReturnedOnce() {
	positions := s.placeAcross(3, 3, "DOG")

	found := s.service.Extract(s.board, positions)

	s.Len(found, 1)
}

func (s *ServiceSuite) TestStopsAtEdge() {
	positions := s.placeAcross(0, 13, "GO")

	found := s.service.Extract(s.board, positions)

	s.Require().Len(found, 1)
	s.Equal(model.Position{Row: 0, Col: 14}, found[0].Positions[1])
}

func (s *ServiceSuite) TestGapSplitsRuns() {
	s.placeAcross(7, 4, "AT")
	positions := s.placeAcross(7, 7, "GO")

	found := s.service.Extract(s.board, positions)

	s.Equal([]string{"GO"}, s.texts(found))
}
