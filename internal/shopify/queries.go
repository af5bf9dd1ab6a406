package shopify

// Fixed GraphQL documents sent to the Storefront API. Shared fragments are
// spliced into every operation that returns the same entity so field
// selections stay consistent across the catalog.

const cartFragment = `
fragment CartFragment on Cart {
  id
  checkoutUrl
  createdAt
  updatedAt
  lines(first: 100) {
    edges {
      node {
        id
        quantity
        merchandise {
          ... on ProductVariant {
            id
            title
            image {
              url
              altText
            }
            priceV2 {
              amount
              currencyCode
            }
            product {
              title
              handle
            }
          }
        }
      }
    }
  }
  cost {
    totalAmount {
      amount
      currencyCode
    }
    subtotalAmount {
      amount
      currencyCode
    }
    totalTaxAmount {
      amount
      currencyCode
    }
  }
  totalQuantity
}
`

const GetCartQuery = `
query getCart($cartId: ID!) {
  cart(id: $cartId) {
    ...CartFragment
  }
}
` + cartFragment

const CreateCartMutation = `
mutation cartCreate($input: CartInput!) {
  cartCreate(input: $input) {
    cart {
      ...CartFragment
    }
    userErrors {
      field
      message
    }
  }
}
` + cartFragment

const AddToCartMutation = `
mutation cartLinesAdd($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart {
      ...CartFragment
    }
    userErrors {
      field
      message
    }
  }
}
` + cartFragment

const RemoveFromCartMutation = `
mutation cartLinesRemove($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart {
      ...CartFragment
    }
    userErrors {
      field
      message
    }
  }
}
` + cartFragment

const UpdateCartMutation = `
mutation cartLinesUpdate($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart {
      ...CartFragment
    }
    userErrors {
      field
      message
    }
  }
}
` + cartFragment

const customerFragment = `
fragment CustomerFragment on Customer {
  id
  email
  firstName
  lastName
  displayName
  phone
  defaultAddress {
    id
    firstName
    lastName
    company
    address1
    address2
    city
    province
    country
    zip
    phone
  }
  addresses(first: 10) {
    edges {
      node {
        id
        firstName
        lastName
        company
        address1
        address2
        city
        province
        country
        zip
        phone
      }
    }
  }
}
`

const CreateCustomerMutation = `
mutation customerCreate($input: CustomerCreateInput!) {
  customerCreate(input: $input) {
    customer {
      id
      email
      firstName
      lastName
      displayName
    }
    customerUserErrors {
      code
      field
      message
    }
  }
}
`

const CreateAccessTokenMutation = `
mutation customerAccessTokenCreate($input: CustomerAccessTokenCreateInput!) {
  customerAccessTokenCreate(input: $input) {
    customerAccessToken {
      accessToken
      expiresAt
    }
    customerUserErrors {
      code
      field
      message
    }
  }
}
`

const RevokeAccessTokenMutation = `
mutation customerAccessTokenRevoke($customerAccessToken: String!) {
  customerAccessTokenRevoke(customerAccessToken: $customerAccessToken) {
    deletedAccessToken
    deletedCustomerAccessTokenId
    userErrors {
      field
      message
    }
  }
}
`

const orderFragment = `
fragment OrderFragment on Order {
  id
  orderNumber
  name
  processedAt
  financialStatus
  fulfillmentStatus
  totalPriceV2 {
    amount
    currencyCode
  }
  lineItems(first: 10) {
    edges {
      node {
        title
        quantity
        variant {
          title
          image {
            url
            altText
          }
          priceV2 {
            amount
            currencyCode
          }
        }
      }
    }
  }
}
`

const GetCustomerQuery = `
query getCustomer($customerAccessToken: String!) {
  customer(customerAccessToken: $customerAccessToken) {
    ...CustomerFragment
    orders(first: 10, sortKey: PROCESSED_AT, reverse: true) {
      edges {
        node {
          ...OrderFragment
        }
      }
    }
  }
}
` + customerFragment + orderFragment

const GetCustomerOrdersQuery = `
query getCustomerOrders($customerAccessToken: String!, $first: Int!) {
  customer(customerAccessToken: $customerAccessToken) {
    orders(first: $first, sortKey: PROCESSED_AT, reverse: true) {
      edges {
        node {
          ...OrderFragment
        }
      }
      pageInfo {
        hasNextPage
        hasPreviousPage
        startCursor
        endCursor
      }
    }
  }
}
` + orderFragment

const productFragment = `
fragment ProductFragment on Product {
  id
  title
  handle
  description
  descriptionHtml
  vendor
  productType
  tags
  featuredImage {
    url
    altText
    width
    height
  }
  images(first: 10) {
    edges {
      node {
        url
        altText
        width
        height
      }
    }
  }
  options {
    name
    values
  }
  variants(first: 10) {
    edges {
      node {
        id
        title
        sku
        availableForSale
        quantityAvailable
        priceV2 {
          amount
          currencyCode
        }
        compareAtPriceV2 {
          amount
          currencyCode
        }
        selectedOptions {
          name
          value
        }
        image {
          url
          altText
          width
          height
        }
      }
    }
  }
}
`

const GetProductByHandleQuery = `
query getProductByHandle($handle: String!) {
  productByHandle(handle: $handle) {
    ...ProductFragment
  }
}
` + productFragment

const GetProductsQuery = `
query getProducts($first: Int!, $after: String, $sortKey: ProductSortKeys, $reverse: Boolean, $query: String) {
  products(first: $first, after: $after, sortKey: $sortKey, reverse: $reverse, query: $query) {
    edges {
      node {
        ...ProductFragment
      }
    }
    pageInfo {
      hasNextPage
      hasPreviousPage
      startCursor
      endCursor
    }
  }
}
` + productFragment

const collectionFragment = `
fragment CollectionFragment on Collection {
  id
  title
  handle
  description
  descriptionHtml
  image {
    url
    altText
    width
    height
  }
  updatedAt
}
`

const GetCollectionsQuery = `
query getCollections($first: Int!, $after: String) {
  collections(first: $first, after: $after) {
    pageInfo {
      hasNextPage
      hasPreviousPage
      startCursor
      endCursor
    }
    edges {
      cursor
      node {
        ...CollectionFragment
        productsCount
      }
    }
  }
}
` + collectionFragment

const GetCollectionByHandleQuery = `
query getCollectionByHandle($handle: String!, $first: Int!, $after: String, $sortKey: ProductCollectionSortKeys!, $reverse: Boolean!) {
  collectionByHandle(handle: $handle) {
    ...CollectionFragment
    products(first: $first, after: $after, sortKey: $sortKey, reverse: $reverse) {
      pageInfo {
        hasNextPage
        hasPreviousPage
        startCursor
        endCursor
      }
      edges {
        cursor
        node {
          ...ProductFragment
        }
      }
    }
  }
}
` + collectionFragment + productFragment
