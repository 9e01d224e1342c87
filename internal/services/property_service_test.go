// internal/services/property_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/Player-18/catalog/internal/models"
)

type PropertyServiceTestSuite struct {
	suite.Suite
	db         *gorm.DB
	properties *PropertyService
}

func (suite *PropertyServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.properties = NewPropertyService(suite.db)
}

func (suite *PropertyServiceTestSuite) TestCreateAndGetListProperty() {
	created, err := suite.properties.CreateProperty(&CreatePropertyRequest{
		UID:  "color",
		Name: "Color",
		Kind: models.PropertyKindList,
		Values: []PropertyValueInput{
			{ValueUID: "red", Label: "Red"},
			{ValueUID: "blue", Label: "Blue"},
		},
	})
	suite.Require().NoError(err)
	suite.Equal("color", created.UID)

	fetched, err := suite.properties.GetProperty("color")
	suite.Require().NoError(err)
	suite.Equal(models.PropertyKindList, fetched.Kind)
	suite.Equal(models.PropertyValues{
		{ValueUID: "red", Label: "Red"},
		{ValueUID: "blue", Label: "Blue"},
	}, fetched.Values)
}

func (suite *PropertyServiceTestSuite) TestCreateAndGetNumericProperty() {
	_, err := suite.properties.CreateProperty(&CreatePropertyRequest{
		UID:  "price",
		Name: "Price",
		Kind: models.PropertyKindNumeric,
	})
	suite.Require().NoError(err)

	fetched, err := suite.properties.GetProperty("price")
	suite.Require().NoError(err)
	suite.Equal(models.PropertyKindNumeric, fetched.Kind)
	suite.Nil(fetched.Values)
}

func (suite *PropertyServiceTestSuite) TestCreateDuplicateUIDIsConflict() {
	req := CreatePropertyRequest{UID: "price", Name: "Price", Kind: models.PropertyKindNumeric}
	_, err := suite.properties.CreateProperty(&req)
	suite.Require().NoError(err)

	_, err = suite.properties.CreateProperty(&req)
	suite.ErrorIs(err, ErrConflict)
}

func (suite *PropertyServiceTestSuite) TestCreateListWithoutValuesIsInvalid() {
	_, err := suite.properties.CreateProperty(&CreatePropertyRequest{
		UID: "color", Name: "Color", Kind: models.PropertyKindList,
	})
	suite.ErrorIs(err, ErrInvalid)
}

func (suite *PropertyServiceTestSuite) TestCreateNumericWithValuesIsInvalid() {
	_, err := suite.properties.CreateProperty(&CreatePropertyRequest{
		UID: "price", Name: "Price", Kind: models.PropertyKindNumeric,
		Values: []PropertyValueInput{{ValueUID: "10"}},
	})
	suite.ErrorIs(err, ErrInvalid)
}

func (suite *PropertyServiceTestSuite) TestCreateDuplicateValueIsInvalid() {
	_, err := suite.properties.CreateProperty(&CreatePropertyRequest{
		UID: "color", Name: "Color", Kind: models.PropertyKindList,
		Values: []PropertyValueInput{{ValueUID: "red"}, {ValueUID: "red"}},
	})
	suite.ErrorIs(err, ErrInvalid)
}

func (suite *PropertyServiceTestSuite) TestCreateBadKindIsInvalid() {
	_, err := suite.properties.CreateProperty(&CreatePropertyRequest{
		UID: "color", Name: "Color", Kind: "enum",
		Values: []PropertyValueInput{{ValueUID: "red"}},
	})
	suite.ErrorIs(err, ErrInvalid)
}

func (suite *PropertyServiceTestSuite) TestCreateBadUIDIsInvalid() {
	_, err := suite.properties.CreateProperty(&CreatePropertyRequest{
		UID: "not a uid!", Name: "Color", Kind: models.PropertyKindList,
		Values: []PropertyValueInput{{ValueUID: "red"}},
	})
	suite.ErrorIs(err, ErrInvalid)
}

func (suite *PropertyServiceTestSuite) TestDeleteProperty() {
	_, err := suite.properties.CreateProperty(&CreatePropertyRequest{
		UID: "price", Name: "Price", Kind: models.PropertyKindNumeric,
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.properties.DeleteProperty("price"))

	_, err = suite.properties.GetProperty("price")
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *PropertyServiceTestSuite) TestDeleteAbsentPropertyIsNotFound() {
	suite.ErrorIs(suite.properties.DeleteProperty("ghost"), ErrNotFound)
}

func (suite *PropertyServiceTestSuite) TestDeletePropertyCascadesAssociations() {
	_, err := suite.properties.CreateProperty(&CreatePropertyRequest{
		UID: "price", Name: "Price", Kind: models.PropertyKindNumeric,
	})
	suite.Require().NoError(err)

	products := NewProductService(suite.db)
	_, err = products.CreateProduct(&CreateProductRequest{
		UID: "p1", Name: "Shirt",
		Properties: []ProductPropertyInput{{UID: "price", Value: i64Ptr(10)}},
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.properties.DeleteProperty("price"))

	var count int64
	suite.Require().NoError(suite.db.Model(&models.ProductProperty{}).
		Where("property_uid = ?", "price").Count(&count).Error)
	suite.Zero(count)
}

func TestPropertyServiceSuite(t *testing.T) {
	suite.Run(t, new(PropertyServiceTestSuite))
}
