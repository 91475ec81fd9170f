// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tree

// SpaceLocation identifies the structural slot a Space fills.
type SpaceLocation int

const (
	SpaceCompilationUnitPrefix SpaceLocation = iota
	SpaceCompilationUnitPackageDeclarationSuffix
	SpaceCompilationUnitImportsSuffix
	SpaceCompilationUnitEof
	SpacePackagePrefix
	SpaceImportPrefix
	SpaceImportStatic
	SpaceImportAlias
	SpaceClassDeclarationPrefix
	SpaceClassDeclarationTypeParameters
	SpaceClassDeclarationTypeParametersSuffix
	SpaceClassDeclarationPrimaryConstructor
	SpaceClassDeclarationPrimaryConstructorSuffix
	SpaceClassDeclarationExtends
	SpaceClassDeclarationImplements
	SpaceClassDeclarationImplementsSuffix
	SpaceClassDeclarationPermits
	SpaceClassDeclarationPermitsSuffix
	SpaceClassDeclarationKindPrefix
	SpaceEnumValuePrefix
	SpaceEnumValueSetPrefix
	SpaceEnumValueSetEnumsSuffix
	SpaceMethodDeclarationPrefix
	SpaceMethodDeclarationParameters
	SpaceMethodDeclarationParametersSuffix
	SpaceMethodDeclarationThrows
	SpaceMethodDeclarationThrowsSuffix
	SpaceMethodDeclarationDefaultValue
	SpaceVariableDeclarationsPrefix
	SpaceVariableDeclarationsVarargs
	SpaceVariableDeclarationsDimensionsBeforeName
	SpaceVariableDeclarationsVariablesSuffix
	SpaceNamedVariablePrefix
	SpaceNamedVariableDimensionsAfterName
	SpaceNamedVariableInitializer
	SpaceTypeParameterPrefix
	SpaceTypeParameterBounds
	SpaceTypeParameterBoundsSuffix
	SpaceTypeParametersPrefix
	SpaceTypeParametersTypeParametersSuffix
	SpaceModifierPrefix
	SpaceAnnotationPrefix
	SpaceAnnotationArguments
	SpaceAnnotationArgumentsSuffix
	SpaceAssertPrefix
	SpaceAssertDetail
	SpaceBlockPrefix
	SpaceBlockStaticSuffix
	SpaceBlockStatementsSuffix
	SpaceBlockEnd
	SpaceBreakPrefix
	SpaceCasePrefix
	SpaceCaseCaseLabels
	SpaceCaseCaseLabelsSuffix
	SpaceCaseStatements
	SpaceCaseStatementsSuffix
	SpaceCaseBodySuffix
	SpaceContinuePrefix
	SpaceDoWhileLoopPrefix
	SpaceDoWhileLoopBodySuffix
	SpaceDoWhileLoopWhileCondition
	SpaceEmptyPrefix
	SpaceForEachLoopPrefix
	SpaceForEachLoopBodySuffix
	SpaceForEachLoopControlPrefix
	SpaceForEachLoopControlVariableSuffix
	SpaceForEachLoopControlIterableSuffix
	SpaceForLoopPrefix
	SpaceForLoopBodySuffix
	SpaceForLoopControlPrefix
	SpaceForLoopControlInitSuffix
	SpaceForLoopControlConditionSuffix
	SpaceForLoopControlUpdateSuffix
	SpaceIfPrefix
	SpaceIfThenPartSuffix
	SpaceIfElsePrefix
	SpaceIfElseBodySuffix
	SpaceLabelPrefix
	SpaceLabelLabelSuffix
	SpaceReturnPrefix
	SpaceSwitchPrefix
	SpaceSynchronizedPrefix
	SpaceThrowPrefix
	SpaceTryPrefix
	SpaceTryResources
	SpaceTryResourcesSuffix
	SpaceTryFinally
	SpaceTryResourcePrefix
	SpaceTryCatchPrefix
	SpaceWhileLoopPrefix
	SpaceWhileLoopBodySuffix
	SpaceYieldPrefix
	SpaceArrayAccessPrefix
	SpaceArrayDimensionPrefix
	SpaceArrayDimensionIndexSuffix
	SpaceAssignmentPrefix
	SpaceAssignmentAssignment
	SpaceAssignmentOperationPrefix
	SpaceAssignmentOperationOperator
	SpaceBinaryPrefix
	SpaceBinaryOperator
	SpaceControlParenthesesPrefix
	SpaceControlParenthesesTreeSuffix
	SpaceDeconstructionPatternPrefix
	SpaceDeconstructionPatternNested
	SpaceDeconstructionPatternNestedSuffix
	SpaceFieldAccessPrefix
	SpaceFieldAccessName
	SpaceIdentifierPrefix
	SpaceInstanceOfPrefix
	SpaceInstanceOfExpressionSuffix
	SpaceLambdaPrefix
	SpaceLambdaArrow
	SpaceLambdaParametersPrefix
	SpaceLambdaParametersParametersSuffix
	SpaceLiteralPrefix
	SpaceMemberReferencePrefix
	SpaceMemberReferenceContainingSuffix
	SpaceMemberReferenceTypeParameters
	SpaceMemberReferenceTypeParametersSuffix
	SpaceMemberReferenceReference
	SpaceMethodInvocationPrefix
	SpaceMethodInvocationSelectSuffix
	SpaceMethodInvocationTypeParameters
	SpaceMethodInvocationTypeParametersSuffix
	SpaceMethodInvocationArguments
	SpaceMethodInvocationArgumentsSuffix
	SpaceNewArrayPrefix
	SpaceNewArrayInitializer
	SpaceNewArrayInitializerSuffix
	SpaceNewClassPrefix
	SpaceNewClassEnclosingSuffix
	SpaceNewClassNew
	SpaceNewClassArguments
	SpaceNewClassArgumentsSuffix
	SpaceParenthesesPrefix
	SpaceParenthesesTreeSuffix
	SpaceSwitchExpressionPrefix
	SpaceTernaryPrefix
	SpaceTernaryTruePart
	SpaceTernaryFalsePart
	SpaceTypeCastPrefix
	SpaceUnaryPrefix
	SpaceUnaryOperator
	SpaceAnnotatedTypePrefix
	SpaceArrayTypePrefix
	SpaceArrayTypeDimension
	SpaceIntersectionTypePrefix
	SpaceIntersectionTypeBounds
	SpaceIntersectionTypeBoundsSuffix
	SpaceMultiCatchPrefix
	SpaceMultiCatchAlternativesSuffix
	SpaceNullableTypePrefix
	SpaceNullableTypeTypeTreeSuffix
	SpaceParameterizedTypePrefix
	SpaceParameterizedTypeTypeParameters
	SpaceParameterizedTypeTypeParametersSuffix
	SpaceParenthesizedTypeTreePrefix
	SpacePrimitivePrefix
	SpaceWildcardPrefix
	SpaceWildcardBound
	SpaceUnknownPrefix
	SpaceUnknownSourcePrefix
	SpaceErroneousPrefix
)

var spaceLocationNames = [...]string{
	SpaceCompilationUnitPrefix:                    "COMPILATION_UNIT_PREFIX",
	SpaceCompilationUnitPackageDeclarationSuffix:  "COMPILATION_UNIT_PACKAGE_DECLARATION_SUFFIX",
	SpaceCompilationUnitImportsSuffix:             "COMPILATION_UNIT_IMPORTS_SUFFIX",
	SpaceCompilationUnitEof:                       "COMPILATION_UNIT_EOF",
	SpacePackagePrefix:                            "PACKAGE_PREFIX",
	SpaceImportPrefix:                             "IMPORT_PREFIX",
	SpaceImportStatic:                             "IMPORT_STATIC",
	SpaceImportAlias:                              "IMPORT_ALIAS",
	SpaceClassDeclarationPrefix:                   "CLASS_DECLARATION_PREFIX",
	SpaceClassDeclarationTypeParameters:           "CLASS_DECLARATION_TYPE_PARAMETERS",
	SpaceClassDeclarationTypeParametersSuffix:     "CLASS_DECLARATION_TYPE_PARAMETERS_SUFFIX",
	SpaceClassDeclarationPrimaryConstructor:       "CLASS_DECLARATION_PRIMARY_CONSTRUCTOR",
	SpaceClassDeclarationPrimaryConstructorSuffix: "CLASS_DECLARATION_PRIMARY_CONSTRUCTOR_SUFFIX",
	SpaceClassDeclarationExtends:                  "CLASS_DECLARATION_EXTENDS",
	SpaceClassDeclarationImplements:               "CLASS_DECLARATION_IMPLEMENTS",
	SpaceClassDeclarationImplementsSuffix:         "CLASS_DECLARATION_IMPLEMENTS_SUFFIX",
	SpaceClassDeclarationPermits:                  "CLASS_DECLARATION_PERMITS",
	SpaceClassDeclarationPermitsSuffix:            "CLASS_DECLARATION_PERMITS_SUFFIX",
	SpaceClassDeclarationKindPrefix:               "CLASS_DECLARATION_KIND_PREFIX",
	SpaceEnumValuePrefix:                          "ENUM_VALUE_PREFIX",
	SpaceEnumValueSetPrefix:                       "ENUM_VALUE_SET_PREFIX",
	SpaceEnumValueSetEnumsSuffix:                  "ENUM_VALUE_SET_ENUMS_SUFFIX",
	SpaceMethodDeclarationPrefix:                  "METHOD_DECLARATION_PREFIX",
	SpaceMethodDeclarationParameters:              "METHOD_DECLARATION_PARAMETERS",
	SpaceMethodDeclarationParametersSuffix:        "METHOD_DECLARATION_PARAMETERS_SUFFIX",
	SpaceMethodDeclarationThrows:                  "METHOD_DECLARATION_THROWS",
	SpaceMethodDeclarationThrowsSuffix:            "METHOD_DECLARATION_THROWS_SUFFIX",
	SpaceMethodDeclarationDefaultValue:            "METHOD_DECLARATION_DEFAULT_VALUE",
	SpaceVariableDeclarationsPrefix:               "VARIABLE_DECLARATIONS_PREFIX",
	SpaceVariableDeclarationsVarargs:              "VARIABLE_DECLARATIONS_VARARGS",
	SpaceVariableDeclarationsDimensionsBeforeName: "VARIABLE_DECLARATIONS_DIMENSIONS_BEFORE_NAME",
	SpaceVariableDeclarationsVariablesSuffix:      "VARIABLE_DECLARATIONS_VARIABLES_SUFFIX",
	SpaceNamedVariablePrefix:                      "NAMED_VARIABLE_PREFIX",
	SpaceNamedVariableDimensionsAfterName:         "NAMED_VARIABLE_DIMENSIONS_AFTER_NAME",
	SpaceNamedVariableInitializer:                 "NAMED_VARIABLE_INITIALIZER",
	SpaceTypeParameterPrefix:                      "TYPE_PARAMETER_PREFIX",
	SpaceTypeParameterBounds:                      "TYPE_PARAMETER_BOUNDS",
	SpaceTypeParameterBoundsSuffix:                "TYPE_PARAMETER_BOUNDS_SUFFIX",
	SpaceTypeParametersPrefix:                     "TYPE_PARAMETERS_PREFIX",
	SpaceTypeParametersTypeParametersSuffix:       "TYPE_PARAMETERS_TYPE_PARAMETERS_SUFFIX",
	SpaceModifierPrefix:                           "MODIFIER_PREFIX",
	SpaceAnnotationPrefix:                         "ANNOTATION_PREFIX",
	SpaceAnnotationArguments:                      "ANNOTATION_ARGUMENTS",
	SpaceAnnotationArgumentsSuffix:                "ANNOTATION_ARGUMENTS_SUFFIX",
	SpaceAssertPrefix:                             "ASSERT_PREFIX",
	SpaceAssertDetail:                             "ASSERT_DETAIL",
	SpaceBlockPrefix:                              "BLOCK_PREFIX",
	SpaceBlockStaticSuffix:                        "BLOCK_STATIC_SUFFIX",
	SpaceBlockStatementsSuffix:                    "BLOCK_STATEMENTS_SUFFIX",
	SpaceBlockEnd:                                 "BLOCK_END",
	SpaceBreakPrefix:                              "BREAK_PREFIX",
	SpaceCasePrefix:                               "CASE_PREFIX",
	SpaceCaseCaseLabels:                           "CASE_CASE_LABELS",
	SpaceCaseCaseLabelsSuffix:                     "CASE_CASE_LABELS_SUFFIX",
	SpaceCaseStatements:                           "CASE_STATEMENTS",
	SpaceCaseStatementsSuffix:                     "CASE_STATEMENTS_SUFFIX",
	SpaceCaseBodySuffix:                           "CASE_BODY_SUFFIX",
	SpaceContinuePrefix:                           "CONTINUE_PREFIX",
	SpaceDoWhileLoopPrefix:                        "DO_WHILE_LOOP_PREFIX",
	SpaceDoWhileLoopBodySuffix:                    "DO_WHILE_LOOP_BODY_SUFFIX",
	SpaceDoWhileLoopWhileCondition:                "DO_WHILE_LOOP_WHILE_CONDITION",
	SpaceEmptyPrefix:                              "EMPTY_PREFIX",
	SpaceForEachLoopPrefix:                        "FOR_EACH_LOOP_PREFIX",
	SpaceForEachLoopBodySuffix:                    "FOR_EACH_LOOP_BODY_SUFFIX",
	SpaceForEachLoopControlPrefix:                 "FOR_EACH_LOOP_CONTROL_PREFIX",
	SpaceForEachLoopControlVariableSuffix:         "FOR_EACH_LOOP_CONTROL_VARIABLE_SUFFIX",
	SpaceForEachLoopControlIterableSuffix:         "FOR_EACH_LOOP_CONTROL_ITERABLE_SUFFIX",
	SpaceForLoopPrefix:                            "FOR_LOOP_PREFIX",
	SpaceForLoopBodySuffix:                        "FOR_LOOP_BODY_SUFFIX",
	SpaceForLoopControlPrefix:                     "FOR_LOOP_CONTROL_PREFIX",
	SpaceForLoopControlInitSuffix:                 "FOR_LOOP_CONTROL_INIT_SUFFIX",
	SpaceForLoopControlConditionSuffix:            "FOR_LOOP_CONTROL_CONDITION_SUFFIX",
	SpaceForLoopControlUpdateSuffix:               "FOR_LOOP_CONTROL_UPDATE_SUFFIX",
	SpaceIfPrefix:                                 "IF_PREFIX",
	SpaceIfThenPartSuffix:                         "IF_THEN_PART_SUFFIX",
	SpaceIfElsePrefix:                             "IF_ELSE_PREFIX",
	SpaceIfElseBodySuffix:                         "IF_ELSE_BODY_SUFFIX",
	SpaceLabelPrefix:                              "LABEL_PREFIX",
	SpaceLabelLabelSuffix:                         "LABEL_LABEL_SUFFIX",
	SpaceReturnPrefix:                             "RETURN_PREFIX",
	SpaceSwitchPrefix:                             "SWITCH_PREFIX",
	SpaceSynchronizedPrefix:                       "SYNCHRONIZED_PREFIX",
	SpaceThrowPrefix:                              "THROW_PREFIX",
	SpaceTryPrefix:                                "TRY_PREFIX",
	SpaceTryResources:                             "TRY_RESOURCES",
	SpaceTryResourcesSuffix:                       "TRY_RESOURCES_SUFFIX",
	SpaceTryFinally:                               "TRY_FINALLY",
	SpaceTryResourcePrefix:                        "TRY_RESOURCE_PREFIX",
	SpaceTryCatchPrefix:                           "TRY_CATCH_PREFIX",
	SpaceWhileLoopPrefix:                          "WHILE_LOOP_PREFIX",
	SpaceWhileLoopBodySuffix:                      "WHILE_LOOP_BODY_SUFFIX",
	SpaceYieldPrefix:                              "YIELD_PREFIX",
	SpaceArrayAccessPrefix:                        "ARRAY_ACCESS_PREFIX",
	SpaceArrayDimensionPrefix:                     "ARRAY_DIMENSION_PREFIX",
	SpaceArrayDimensionIndexSuffix:                "ARRAY_DIMENSION_INDEX_SUFFIX",
	SpaceAssignmentPrefix:                         "ASSIGNMENT_PREFIX",
	SpaceAssignmentAssignment:                     "ASSIGNMENT_ASSIGNMENT",
	SpaceAssignmentOperationPrefix:                "ASSIGNMENT_OPERATION_PREFIX",
	SpaceAssignmentOperationOperator:              "ASSIGNMENT_OPERATION_OPERATOR",
	SpaceBinaryPrefix:                             "BINARY_PREFIX",
	SpaceBinaryOperator:                           "BINARY_OPERATOR",
	SpaceControlParenthesesPrefix:                 "CONTROL_PARENTHESES_PREFIX",
	SpaceControlParenthesesTreeSuffix:             "CONTROL_PARENTHESES_TREE_SUFFIX",
	SpaceDeconstructionPatternPrefix:              "DECONSTRUCTION_PATTERN_PREFIX",
	SpaceDeconstructionPatternNested:              "DECONSTRUCTION_PATTERN_NESTED",
	SpaceDeconstructionPatternNestedSuffix:        "DECONSTRUCTION_PATTERN_NESTED_SUFFIX",
	SpaceFieldAccessPrefix:                        "FIELD_ACCESS_PREFIX",
	SpaceFieldAccessName:                          "FIELD_ACCESS_NAME",
	SpaceIdentifierPrefix:                         "IDENTIFIER_PREFIX",
	SpaceInstanceOfPrefix:                         "INSTANCE_OF_PREFIX",
	SpaceInstanceOfExpressionSuffix:               "INSTANCE_OF_EXPRESSION_SUFFIX",
	SpaceLambdaPrefix:                             "LAMBDA_PREFIX",
	SpaceLambdaArrow:                              "LAMBDA_ARROW",
	SpaceLambdaParametersPrefix:                   "LAMBDA_PARAMETERS_PREFIX",
	SpaceLambdaParametersParametersSuffix:         "LAMBDA_PARAMETERS_PARAMETERS_SUFFIX",
	SpaceLiteralPrefix:                            "LITERAL_PREFIX",
	SpaceMemberReferencePrefix:                    "MEMBER_REFERENCE_PREFIX",
	SpaceMemberReferenceContainingSuffix:          "MEMBER_REFERENCE_CONTAINING_SUFFIX",
	SpaceMemberReferenceTypeParameters:            "MEMBER_REFERENCE_TYPE_PARAMETERS",
	SpaceMemberReferenceTypeParametersSuffix:      "MEMBER_REFERENCE_TYPE_PARAMETERS_SUFFIX",
	SpaceMemberReferenceReference:                 "MEMBER_REFERENCE_REFERENCE",
	SpaceMethodInvocationPrefix:                   "METHOD_INVOCATION_PREFIX",
	SpaceMethodInvocationSelectSuffix:             "METHOD_INVOCATION_SELECT_SUFFIX",
	SpaceMethodInvocationTypeParameters:           "METHOD_INVOCATION_TYPE_PARAMETERS",
	SpaceMethodInvocationTypeParametersSuffix:     "METHOD_INVOCATION_TYPE_PARAMETERS_SUFFIX",
	SpaceMethodInvocationArguments:                "METHOD_INVOCATION_ARGUMENTS",
	SpaceMethodInvocationArgumentsSuffix:          "METHOD_INVOCATION_ARGUMENTS_SUFFIX",
	SpaceNewArrayPrefix:                           "NEW_ARRAY_PREFIX",
	SpaceNewArrayInitializer:                      "NEW_ARRAY_INITIALIZER",
	SpaceNewArrayInitializerSuffix:                "NEW_ARRAY_INITIALIZER_SUFFIX",
	SpaceNewClassPrefix:                           "NEW_CLASS_PREFIX",
	SpaceNewClassEnclosingSuffix:                  "NEW_CLASS_ENCLOSING_SUFFIX",
	SpaceNewClassNew:                              "NEW_CLASS_NEW",
	SpaceNewClassArguments:                        "NEW_CLASS_ARGUMENTS",
	SpaceNewClassArgumentsSuffix:                  "NEW_CLASS_ARGUMENTS_SUFFIX",
	SpaceParenthesesPrefix:                        "PARENTHESES_PREFIX",
	SpaceParenthesesTreeSuffix:                    "PARENTHESES_TREE_SUFFIX",
	SpaceSwitchExpressionPrefix:                   "SWITCH_EXPRESSION_PREFIX",
	SpaceTernaryPrefix:                            "TERNARY_PREFIX",
	SpaceTernaryTruePart:                          "TERNARY_TRUE_PART",
	SpaceTernaryFalsePart:                         "TERNARY_FALSE_PART",
	SpaceTypeCastPrefix:                           "TYPE_CAST_PREFIX",
	SpaceUnaryPrefix:                              "UNARY_PREFIX",
	SpaceUnaryOperator:                            "UNARY_OPERATOR",
	SpaceAnnotatedTypePrefix:                      "ANNOTATED_TYPE_PREFIX",
	SpaceArrayTypePrefix:                          "ARRAY_TYPE_PREFIX",
	SpaceArrayTypeDimension:                       "ARRAY_TYPE_DIMENSION",
	SpaceIntersectionTypePrefix:                   "INTERSECTION_TYPE_PREFIX",
	SpaceIntersectionTypeBounds:                   "INTERSECTION_TYPE_BOUNDS",
	SpaceIntersectionTypeBoundsSuffix:             "INTERSECTION_TYPE_BOUNDS_SUFFIX",
	SpaceMultiCatchPrefix:                         "MULTI_CATCH_PREFIX",
	SpaceMultiCatchAlternativesSuffix:             "MULTI_CATCH_ALTERNATIVES_SUFFIX",
	SpaceNullableTypePrefix:                       "NULLABLE_TYPE_PREFIX",
	SpaceNullableTypeTypeTreeSuffix:               "NULLABLE_TYPE_TYPE_TREE_SUFFIX",
	SpaceParameterizedTypePrefix:                  "PARAMETERIZED_TYPE_PREFIX",
	SpaceParameterizedTypeTypeParameters:          "PARAMETERIZED_TYPE_TYPE_PARAMETERS",
	SpaceParameterizedTypeTypeParametersSuffix:    "PARAMETERIZED_TYPE_TYPE_PARAMETERS_SUFFIX",
	SpaceParenthesizedTypeTreePrefix:              "PARENTHESIZED_TYPE_TREE_PREFIX",
	SpacePrimitivePrefix:                          "PRIMITIVE_PREFIX",
	SpaceWildcardPrefix:                           "WILDCARD_PREFIX",
	SpaceWildcardBound:                            "WILDCARD_BOUND",
	SpaceUnknownPrefix:                            "UNKNOWN_PREFIX",
	SpaceUnknownSourcePrefix:                      "UNKNOWN_SOURCE_PREFIX",
	SpaceErroneousPrefix:                          "ERRONEOUS_PREFIX",
}

func (l SpaceLocation) String() string { return locationName(spaceLocationNames[:], int(l)) }

// LeftPaddedLocation identifies the slot a LeftPadded fills.
type LeftPaddedLocation int

const (
	LeftPaddedImportStatic LeftPaddedLocation = iota
	LeftPaddedImportAlias
	LeftPaddedClassDeclarationExtends
	LeftPaddedMethodDeclarationDefaultValue
	LeftPaddedVariableDeclarationsDimensionsBeforeName
	LeftPaddedNamedVariableDimensionsAfterName
	LeftPaddedNamedVariableInitializer
	LeftPaddedAssertDetail
	LeftPaddedDoWhileLoopWhileCondition
	LeftPaddedTryFinally
	LeftPaddedAssignmentAssignment
	LeftPaddedAssignmentOperationOperator
	LeftPaddedBinaryOperator
	LeftPaddedFieldAccessName
	LeftPaddedMemberReferenceReference
	LeftPaddedTernaryTruePart
	LeftPaddedTernaryFalsePart
	LeftPaddedUnaryOperator
	LeftPaddedArrayTypeDimension
	LeftPaddedWildcardBound
)

var leftPaddedLocations = [...]struct {
	name   string
	before SpaceLocation
}{
	LeftPaddedImportStatic:                             {"IMPORT_STATIC", SpaceImportStatic},
	LeftPaddedImportAlias:                              {"IMPORT_ALIAS", SpaceImportAlias},
	LeftPaddedClassDeclarationExtends:                  {"CLASS_DECLARATION_EXTENDS", SpaceClassDeclarationExtends},
	LeftPaddedMethodDeclarationDefaultValue:            {"METHOD_DECLARATION_DEFAULT_VALUE", SpaceMethodDeclarationDefaultValue},
	LeftPaddedVariableDeclarationsDimensionsBeforeName: {"VARIABLE_DECLARATIONS_DIMENSIONS_BEFORE_NAME", SpaceVariableDeclarationsDimensionsBeforeName},
	LeftPaddedNamedVariableDimensionsAfterName:         {"NAMED_VARIABLE_DIMENSIONS_AFTER_NAME", SpaceNamedVariableDimensionsAfterName},
	LeftPaddedNamedVariableInitializer:                 {"NAMED_VARIABLE_INITIALIZER", SpaceNamedVariableInitializer},
	LeftPaddedAssertDetail:                             {"ASSERT_DETAIL", SpaceAssertDetail},
	LeftPaddedDoWhileLoopWhileCondition:                {"DO_WHILE_LOOP_WHILE_CONDITION", SpaceDoWhileLoopWhileCondition},
	LeftPaddedTryFinally:                               {"TRY_FINALLY", SpaceTryFinally},
	LeftPaddedAssignmentAssignment:                     {"ASSIGNMENT_ASSIGNMENT", SpaceAssignmentAssignment},
	LeftPaddedAssignmentOperationOperator:              {"ASSIGNMENT_OPERATION_OPERATOR", SpaceAssignmentOperationOperator},
	LeftPaddedBinaryOperator:                           {"BINARY_OPERATOR", SpaceBinaryOperator},
	LeftPaddedFieldAccessName:                          {"FIELD_ACCESS_NAME", SpaceFieldAccessName},
	LeftPaddedMemberReferenceReference:                 {"MEMBER_REFERENCE_REFERENCE", SpaceMemberReferenceReference},
	LeftPaddedTernaryTruePart:                          {"TERNARY_TRUE_PART", SpaceTernaryTruePart},
	LeftPaddedTernaryFalsePart:                         {"TERNARY_FALSE_PART", SpaceTernaryFalsePart},
	LeftPaddedUnaryOperator:                            {"UNARY_OPERATOR", SpaceUnaryOperator},
	LeftPaddedArrayTypeDimension:                       {"ARRAY_TYPE_DIMENSION", SpaceArrayTypeDimension},
	LeftPaddedWildcardBound:                            {"WILDCARD_BOUND", SpaceWildcardBound},
}

func (l LeftPaddedLocation) String() string { return leftPaddedLocations[l].name }

// BeforeLocation is the location of the wrapper's leading space.
func (l LeftPaddedLocation) BeforeLocation() SpaceLocation { return leftPaddedLocations[l].before }

// RightPaddedLocation identifies the slot a RightPadded fills.
type RightPaddedLocation int

const (
	RightPaddedCompilationUnitPackageDeclaration RightPaddedLocation = iota
	RightPaddedCompilationUnitImports
	RightPaddedClassDeclarationTypeParameters
	RightPaddedClassDeclarationPrimaryConstructor
	RightPaddedClassDeclarationImplements
	RightPaddedClassDeclarationPermits
	RightPaddedEnumValueSetEnums
	RightPaddedMethodDeclarationParameters
	RightPaddedMethodDeclarationThrows
	RightPaddedVariableDeclarationsVariables
	RightPaddedTypeParameterBounds
	RightPaddedTypeParametersTypeParameters
	RightPaddedAnnotationArguments
	RightPaddedBlockStatic
	RightPaddedBlockStatements
	RightPaddedCaseCaseLabels
	RightPaddedCaseStatements
	RightPaddedCaseBody
	RightPaddedDoWhileLoopBody
	RightPaddedForEachLoopBody
	RightPaddedForEachLoopControlVariable
	RightPaddedForEachLoopControlIterable
	RightPaddedForLoopBody
	RightPaddedForLoopControlInit
	RightPaddedForLoopControlCondition
	RightPaddedForLoopControlUpdate
	RightPaddedIfThenPart
	RightPaddedIfElseBody
	RightPaddedLabelLabel
	RightPaddedTryResources
	RightPaddedWhileLoopBody
	RightPaddedArrayDimensionIndex
	RightPaddedControlParenthesesTree
	RightPaddedDeconstructionPatternNested
	RightPaddedInstanceOfExpression
	RightPaddedLambdaParametersParameters
	RightPaddedMemberReferenceContaining
	RightPaddedMemberReferenceTypeParameters
	RightPaddedMethodInvocationSelect
	RightPaddedMethodInvocationTypeParameters
	RightPaddedMethodInvocationArguments
	RightPaddedNewArrayInitializer
	RightPaddedNewClassEnclosing
	RightPaddedNewClassArguments
	RightPaddedParenthesesTree
	RightPaddedIntersectionTypeBounds
	RightPaddedMultiCatchAlternatives
	RightPaddedNullableTypeTypeTree
	RightPaddedParameterizedTypeTypeParameters
)

var rightPaddedLocations = [...]struct {
	name  string
	after SpaceLocation
}{
	RightPaddedCompilationUnitPackageDeclaration:  {"COMPILATION_UNIT_PACKAGE_DECLARATION", SpaceCompilationUnitPackageDeclarationSuffix},
	RightPaddedCompilationUnitImports:             {"COMPILATION_UNIT_IMPORTS", SpaceCompilationUnitImportsSuffix},
	RightPaddedClassDeclarationTypeParameters:     {"CLASS_DECLARATION_TYPE_PARAMETERS", SpaceClassDeclarationTypeParametersSuffix},
	RightPaddedClassDeclarationPrimaryConstructor: {"CLASS_DECLARATION_PRIMARY_CONSTRUCTOR", SpaceClassDeclarationPrimaryConstructorSuffix},
	RightPaddedClassDeclarationImplements:         {"CLASS_DECLARATION_IMPLEMENTS", SpaceClassDeclarationImplementsSuffix},
	RightPaddedClassDeclarationPermits:            {"CLASS_DECLARATION_PERMITS", SpaceClassDeclarationPermitsSuffix},
	RightPaddedEnumValueSetEnums:                  {"ENUM_VALUE_SET_ENUMS", SpaceEnumValueSetEnumsSuffix},
	RightPaddedMethodDeclarationParameters:        {"METHOD_DECLARATION_PARAMETERS", SpaceMethodDeclarationParametersSuffix},
	RightPaddedMethodDeclarationThrows:            {"METHOD_DECLARATION_THROWS", SpaceMethodDeclarationThrowsSuffix},
	RightPaddedVariableDeclarationsVariables:      {"VARIABLE_DECLARATIONS_VARIABLES", SpaceVariableDeclarationsVariablesSuffix},
	RightPaddedTypeParameterBounds:                {"TYPE_PARAMETER_BOUNDS", SpaceTypeParameterBoundsSuffix},
	RightPaddedTypeParametersTypeParameters:       {"TYPE_PARAMETERS_TYPE_PARAMETERS", SpaceTypeParametersTypeParametersSuffix},
	RightPaddedAnnotationArguments:                {"ANNOTATION_ARGUMENTS", SpaceAnnotationArgumentsSuffix},
	RightPaddedBlockStatic:                        {"BLOCK_STATIC", SpaceBlockStaticSuffix},
	RightPaddedBlockStatements:                    {"BLOCK_STATEMENTS", SpaceBlockStatementsSuffix},
	RightPaddedCaseCaseLabels:                     {"CASE_CASE_LABELS", SpaceCaseCaseLabelsSuffix},
	RightPaddedCaseStatements:                     {"CASE_STATEMENTS", SpaceCaseStatementsSuffix},
	RightPaddedCaseBody:                           {"CASE_BODY", SpaceCaseBodySuffix},
	RightPaddedDoWhileLoopBody:                    {"DO_WHILE_LOOP_BODY", SpaceDoWhileLoopBodySuffix},
	RightPaddedForEachLoopBody:                    {"FOR_EACH_LOOP_BODY", SpaceForEachLoopBodySuffix},
	RightPaddedForEachLoopControlVariable:         {"FOR_EACH_LOOP_CONTROL_VARIABLE", SpaceForEachLoopControlVariableSuffix},
	RightPaddedForEachLoopControlIterable:         {"FOR_EACH_LOOP_CONTROL_ITERABLE", SpaceForEachLoopControlIterableSuffix},
	RightPaddedForLoopBody:                        {"FOR_LOOP_BODY", SpaceForLoopBodySuffix},
	RightPaddedForLoopControlInit:                 {"FOR_LOOP_CONTROL_INIT", SpaceForLoopControlInitSuffix},
	RightPaddedForLoopControlCondition:            {"FOR_LOOP_CONTROL_CONDITION", SpaceForLoopControlConditionSuffix},
	RightPaddedForLoopControlUpdate:               {"FOR_LOOP_CONTROL_UPDATE", SpaceForLoopControlUpdateSuffix},
	RightPaddedIfThenPart:                         {"IF_THEN_PART", SpaceIfThenPartSuffix},
	RightPaddedIfElseBody:                         {"IF_ELSE_BODY", SpaceIfElseBodySuffix},
	RightPaddedLabelLabel:                         {"LABEL_LABEL", SpaceLabelLabelSuffix},
	RightPaddedTryResources:                       {"TRY_RESOURCES", SpaceTryResourcesSuffix},
	RightPaddedWhileLoopBody:                      {"WHILE_LOOP_BODY", SpaceWhileLoopBodySuffix},
	RightPaddedArrayDimensionIndex:                {"ARRAY_DIMENSION_INDEX", SpaceArrayDimensionIndexSuffix},
	RightPaddedControlParenthesesTree:             {"CONTROL_PARENTHESES_TREE", SpaceControlParenthesesTreeSuffix},
	RightPaddedDeconstructionPatternNested:        {"DECONSTRUCTION_PATTERN_NESTED", SpaceDeconstructionPatternNestedSuffix},
	RightPaddedInstanceOfExpression:               {"INSTANCE_OF_EXPRESSION", SpaceInstanceOfExpressionSuffix},
	RightPaddedLambdaParametersParameters:         {"LAMBDA_PARAMETERS_PARAMETERS", SpaceLambdaParametersParametersSuffix},
	RightPaddedMemberReferenceContaining:          {"MEMBER_REFERENCE_CONTAINING", SpaceMemberReferenceContainingSuffix},
	RightPaddedMemberReferenceTypeParameters:      {"MEMBER_REFERENCE_TYPE_PARAMETERS", SpaceMemberReferenceTypeParametersSuffix},
	RightPaddedMethodInvocationSelect:             {"METHOD_INVOCATION_SELECT", SpaceMethodInvocationSelectSuffix},
	RightPaddedMethodInvocationTypeParameters:     {"METHOD_INVOCATION_TYPE_PARAMETERS", SpaceMethodInvocationTypeParametersSuffix},
	RightPaddedMethodInvocationArguments:          {"METHOD_INVOCATION_ARGUMENTS", SpaceMethodInvocationArgumentsSuffix},
	RightPaddedNewArrayInitializer:                {"NEW_ARRAY_INITIALIZER", SpaceNewArrayInitializerSuffix},
	RightPaddedNewClassEnclosing:                  {"NEW_CLASS_ENCLOSING", SpaceNewClassEnclosingSuffix},
	RightPaddedNewClassArguments:                  {"NEW_CLASS_ARGUMENTS", SpaceNewClassArgumentsSuffix},
	RightPaddedParenthesesTree:                    {"PARENTHESES_TREE", SpaceParenthesesTreeSuffix},
	RightPaddedIntersectionTypeBounds:             {"INTERSECTION_TYPE_BOUNDS", SpaceIntersectionTypeBoundsSuffix},
	RightPaddedMultiCatchAlternatives:             {"MULTI_CATCH_ALTERNATIVES", SpaceMultiCatchAlternativesSuffix},
	RightPaddedNullableTypeTypeTree:               {"NULLABLE_TYPE_TYPE_TREE", SpaceNullableTypeTypeTreeSuffix},
	RightPaddedParameterizedTypeTypeParameters:    {"PARAMETERIZED_TYPE_TYPE_PARAMETERS", SpaceParameterizedTypeTypeParametersSuffix},
}

func (l RightPaddedLocation) String() string { return rightPaddedLocations[l].name }

// AfterLocation is the location of the wrapper's trailing space.
func (l RightPaddedLocation) AfterLocation() SpaceLocation { return rightPaddedLocations[l].after }

// ContainerLocation identifies the slot a Container fills.
type ContainerLocation int

const (
	ContainerClassDeclarationTypeParameters ContainerLocation = iota
	ContainerClassDeclarationPrimaryConstructor
	ContainerClassDeclarationImplements
	ContainerClassDeclarationPermits
	ContainerMethodDeclarationParameters
	ContainerMethodDeclarationThrows
	ContainerTypeParameterBounds
	ContainerAnnotationArguments
	ContainerCaseCaseLabels
	ContainerCaseStatements
	ContainerTryResources
	ContainerDeconstructionPatternNested
	ContainerMemberReferenceTypeParameters
	ContainerMethodInvocationTypeParameters
	ContainerMethodInvocationArguments
	ContainerNewArrayInitializer
	ContainerNewClassArguments
	ContainerIntersectionTypeBounds
	ContainerParameterizedTypeTypeParameters
)

var containerLocations = [...]struct {
	name    string
	before  SpaceLocation
	element RightPaddedLocation
}{
	ContainerClassDeclarationTypeParameters:     {"CLASS_DECLARATION_TYPE_PARAMETERS", SpaceClassDeclarationTypeParameters, RightPaddedClassDeclarationTypeParameters},
	ContainerClassDeclarationPrimaryConstructor: {"CLASS_DECLARATION_PRIMARY_CONSTRUCTOR", SpaceClassDeclarationPrimaryConstructor, RightPaddedClassDeclarationPrimaryConstructor},
	ContainerClassDeclarationImplements:         {"CLASS_DECLARATION_IMPLEMENTS", SpaceClassDeclarationImplements, RightPaddedClassDeclarationImplements},
	ContainerClassDeclarationPermits:            {"CLASS_DECLARATION_PERMITS", SpaceClassDeclarationPermits, RightPaddedClassDeclarationPermits},
	ContainerMethodDeclarationParameters:        {"METHOD_DECLARATION_PARAMETERS", SpaceMethodDeclarationParameters, RightPaddedMethodDeclarationParameters},
	ContainerMethodDeclarationThrows:            {"METHOD_DECLARATION_THROWS", SpaceMethodDeclarationThrows, RightPaddedMethodDeclarationThrows},
	ContainerTypeParameterBounds:                {"TYPE_PARAMETER_BOUNDS", SpaceTypeParameterBounds, RightPaddedTypeParameterBounds},
	ContainerAnnotationArguments:                {"ANNOTATION_ARGUMENTS", SpaceAnnotationArguments, RightPaddedAnnotationArguments},
	ContainerCaseCaseLabels:                     {"CASE_CASE_LABELS", SpaceCaseCaseLabels, RightPaddedCaseCaseLabels},
	ContainerCaseStatements:                     {"CASE_STATEMENTS", SpaceCaseStatements, RightPaddedCaseStatements},
	ContainerTryResources:                       {"TRY_RESOURCES", SpaceTryResources, RightPaddedTryResources},
	ContainerDeconstructionPatternNested:        {"DECONSTRUCTION_PATTERN_NESTED", SpaceDeconstructionPatternNested, RightPaddedDeconstructionPatternNested},
	ContainerMemberReferenceTypeParameters:      {"MEMBER_REFERENCE_TYPE_PARAMETERS", SpaceMemberReferenceTypeParameters, RightPaddedMemberReferenceTypeParameters},
	ContainerMethodInvocationTypeParameters:     {"METHOD_INVOCATION_TYPE_PARAMETERS", SpaceMethodInvocationTypeParameters, RightPaddedMethodInvocationTypeParameters},
	ContainerMethodInvocationArguments:          {"METHOD_INVOCATION_ARGUMENTS", SpaceMethodInvocationArguments, RightPaddedMethodInvocationArguments},
	ContainerNewArrayInitializer:                {"NEW_ARRAY_INITIALIZER", SpaceNewArrayInitializer, RightPaddedNewArrayInitializer},
	ContainerNewClassArguments:                  {"NEW_CLASS_ARGUMENTS", SpaceNewClassArguments, RightPaddedNewClassArguments},
	ContainerIntersectionTypeBounds:             {"INTERSECTION_TYPE_BOUNDS", SpaceIntersectionTypeBounds, RightPaddedIntersectionTypeBounds},
	ContainerParameterizedTypeTypeParameters:    {"PARAMETERIZED_TYPE_TYPE_PARAMETERS", SpaceParameterizedTypeTypeParameters, RightPaddedParameterizedTypeTypeParameters},
}

func (l ContainerLocation) String() string { return containerLocations[l].name }

// BeforeLocation is the location of the container's opening space.
func (l ContainerLocation) BeforeLocation() SpaceLocation { return containerLocations[l].before }

// ElementLocation is the location of each element's padding.
func (l ContainerLocation) ElementLocation() RightPaddedLocation { return containerLocations[l].element }
