package openmc

import (
	"fmt"
)

type makeNewGeneralErrorFuncType = func(message string, formatedvalues ...interface{}) error
type makeNewIDErrorFuncType = func(
	id interface{}, message string, formatedValues ...interface{},
) error

// GeneralSettingsError ...
var GeneralSettingsError = makeNewGeneralErrorFunc(settingsXMLFile)

// SurfaceIDError ...
var SurfaceIDError = makeNewIDErrorFunc("Surface", geometryXMLFile)

// CellIDError ...
var CellIDError = makeNewIDErrorFunc("Cell", geometryXMLFile)

// MaterialIDError ...
var MaterialIDError = makeNewIDErrorFunc("Material", materialsXMLFile)

func makeNewGeneralErrorFunc(serializedFileName string) makeNewGeneralErrorFuncType {
	return func(message string, formatedValues ...interface{}) error {
		return fmt.Errorf("[serializer] "+serializedFileName+": "+message, formatedValues...)
	}
}

func makeNewIDErrorFunc(modelName, serializedFileName string) makeNewIDErrorFuncType {
	return func(id interface{}, message string, formatedValues ...interface{}) error {
		header := fmt.Sprintf("[serializer] %s{Id: %v} -> %s: ", modelName, id, serializedFileName)
		return fmt.Errorf(header+message, formatedValues...)
	}
}
